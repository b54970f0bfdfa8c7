package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pustakdhaan/internal/app"
	"pustakdhaan/internal/config"
	"pustakdhaan/internal/domain"
	"pustakdhaan/internal/models"
	"pustakdhaan/internal/pkg/auth"
	"pustakdhaan/internal/pkg/logger"
	"pustakdhaan/internal/pkg/security"
	"pustakdhaan/internal/storage/mocks"
)

type expectedData struct {
	expectedContentType string
	expectedStatusCode  int
	expectedBody        string
}

func testRequest(t *testing.T, ts *httptest.Server, method, path string, requestBody []byte) (*http.Response, string) {
	return testRequestWithAuth(t, ts, method, path, requestBody, "")
}

func testRequestWithAuth(t *testing.T, ts *httptest.Server, method, path string, requestBody []byte, token string) (*http.Response, string) {
	req, err := http.NewRequest(method, ts.URL+path, bytes.NewBuffer(requestBody))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	client := &http.Client{}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func newTestServer(t *testing.T) (*httptest.Server, *mocks.MockStorage) {
	l, err := logger.CreateLogger(config.LogLevel)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	mockDB := mocks.NewMockStorage(ctrl)

	appInstance := app.NewApp(mockDB, l)
	service := NewService(appInstance, config.ServerRunAddress, l)
	testServer := httptest.NewServer(service.NewRouter())
	t.Cleanup(testServer.Close)
	return testServer, mockDB
}

func tokenFor(t *testing.T, identity models.Identity) string {
	token, err := auth.GenerateToken(identity)
	require.NoError(t, err)
	return token
}

func TestRegisterHandler_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	testCases := []struct {
		name        string
		requestBody []byte
		setupMock   func()
		expected    expectedData
	}{
		{
			name:        "Invalid JSON",
			requestBody: []byte("some body"),
			setupMock:   func() {},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusBadRequest,
				expectedBody:        "{\"errors\":\"invalid character 's' looking for beginning of value\"}\n",
			},
		},
		{
			name:        "Missing name",
			requestBody: []byte(`{"email": "asha@example.com", "password": "secret1"}`),
			setupMock:   func() {},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusBadRequest,
				expectedBody:        "{\"errors\":\"invalid request: name is required\"}\n",
			},
		},
		{
			name:        "Email already registered",
			requestBody: []byte(`{"name": "Asha", "email": "asha@example.com", "password": "secret1"}`),
			setupMock: func() {
				mockDB.EXPECT().CreateUser(gomock.Any(), gomock.AssignableToTypeOf(&models.User{})).
					Return(nil, domain.InvalidOperation("user with provided email already exists"))
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusBadRequest,
				expectedBody:        "{\"errors\":\"user with provided email already exists\"}\n",
			},
		},
		{
			name:        "Successful registration",
			requestBody: []byte(`{"name": "Asha", "email": "asha@example.com", "password": "secret1"}`),
			setupMock: func() {
				mockDB.EXPECT().CreateUser(gomock.Any(), gomock.AssignableToTypeOf(&models.User{})).
					DoAndReturn(func(ctx context.Context, user *models.User) (*models.User, error) {
						return user, nil
					})
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusCreated,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()
			resp, body := testRequest(t, testServer, http.MethodPost, "/api/auth/register", tc.requestBody)
			assert.Equal(t, tc.expected.expectedStatusCode, resp.StatusCode)
			assert.Equal(t, tc.expected.expectedContentType, resp.Header.Get("Content-Type"))
			if tc.expected.expectedStatusCode == http.StatusCreated {
				var authResp models.AuthResponse
				require.NoError(t, json.Unmarshal([]byte(body), &authResp))
				assert.NotEmpty(t, authResp.Token, "token should not be empty")
				assert.Equal(t, models.RoleDonor, authResp.User.Role)
				assert.NotContains(t, body, "passwordHash")
			} else {
				assert.Equal(t, tc.expected.expectedBody, body)
			}
		})
	}
}

func TestLoginHandler_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	hash, err := security.HashPassword("secret1")
	require.NoError(t, err)
	user := models.NewUser("Asha", "asha@example.com", "")
	user.PasswordHash = hash

	testCases := []struct {
		name        string
		requestBody []byte
		setupMock   func()
		expected    expectedData
	}{
		{
			name:        "Unknown email",
			requestBody: []byte(`{"email": "nobody@example.com", "password": "secret1"}`),
			setupMock: func() {
				mockDB.EXPECT().GetUserByEmail(gomock.Any(), "nobody@example.com").
					Return(nil, domain.NotFound("user not found"))
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusUnauthorized,
				expectedBody:        "{\"errors\":\"invalid email or password\"}\n",
			},
		},
		{
			name:        "Incorrect password",
			requestBody: []byte(`{"email": "asha@example.com", "password": "wrongpass"}`),
			setupMock: func() {
				mockDB.EXPECT().GetUserByEmail(gomock.Any(), "asha@example.com").Return(user, nil)
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusUnauthorized,
				expectedBody:        "{\"errors\":\"invalid email or password\"}\n",
			},
		},
		{
			name:        "Database failure",
			requestBody: []byte(`{"email": "asha@example.com", "password": "secret1"}`),
			setupMock: func() {
				mockDB.EXPECT().GetUserByEmail(gomock.Any(), "asha@example.com").Return(nil, errors.New("connection refused"))
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusInternalServerError,
				expectedBody:        "{\"errors\":\"internal server error\"}\n",
			},
		},
		{
			name:        "Successful login",
			requestBody: []byte(`{"email": "asha@example.com", "password": "secret1"}`),
			setupMock: func() {
				mockDB.EXPECT().GetUserByEmail(gomock.Any(), "asha@example.com").Return(user, nil)
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusOK,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()
			resp, body := testRequest(t, testServer, http.MethodPost, "/api/auth/login", tc.requestBody)
			assert.Equal(t, tc.expected.expectedStatusCode, resp.StatusCode)
			assert.Equal(t, tc.expected.expectedContentType, resp.Header.Get("Content-Type"))
			if tc.expected.expectedStatusCode == http.StatusOK {
				var authResp models.AuthResponse
				require.NoError(t, json.Unmarshal([]byte(body), &authResp))
				claims, err := auth.ParseToken(authResp.Token)
				require.NoError(t, err)
				assert.Equal(t, user.ID, claims.UserID)
			} else {
				assert.Equal(t, tc.expected.expectedBody, body)
			}
		})
	}
}

func TestProtectedRoutes_Authentication(t *testing.T) {
	testServer, _ := newTestServer(t)

	testCases := []struct {
		name     string
		header   string
		expected expectedData
	}{
		{
			name:   "No token",
			header: "",
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusUnauthorized,
				expectedBody:        "{\"errors\":\"access denied: no token provided\"}\n",
			},
		},
		{
			name:   "Garbage token",
			header: "Bearer not-a-jwt",
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusForbidden,
				expectedBody:        "{\"errors\":\"invalid token\"}\n",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, testServer.URL+"/api/books/my/books", nil)
			require.NoError(t, err)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.expected.expectedStatusCode, resp.StatusCode)
			assert.Equal(t, tc.expected.expectedContentType, resp.Header.Get("Content-Type"))
			assert.Equal(t, tc.expected.expectedBody, string(body))
		})
	}
}

func TestBookHandlers_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	owner := models.Identity{UserID: uuid.New(), Role: models.RoleDonor}
	stranger := models.Identity{UserID: uuid.New(), Role: models.RoleDonor}
	book := models.NewBook(owner.UserID)
	book.Title = "Panchatantra"
	book.Author = "Vishnu Sharma"
	book.Condition = models.ConditionGood

	testCases := []struct {
		name        string
		method      string
		path        string
		token       string
		requestBody []byte
		setupMock   func()
		expected    expectedData
	}{
		{
			name:   "List books with filters",
			method: http.MethodGet,
			path:   "/api/books?genre=Fiction&search=panch&page=2&limit=5",
			setupMock: func() {
				mockDB.EXPECT().ListBooks(gomock.Any(), models.BookFilter{Genre: "Fiction", Search: "panch", Page: 2, Limit: 5}).
					Return([]models.Book{*book}, 6, nil)
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusOK,
			},
		},
		{
			name:      "List books with bad page",
			method:    http.MethodGet,
			path:      "/api/books?page=two",
			setupMock: func() {},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusBadRequest,
				expectedBody:        "{\"errors\":\"page must be a number\"}\n",
			},
		},
		{
			name:      "Get book with malformed id",
			method:    http.MethodGet,
			path:      "/api/books/abc",
			setupMock: func() {},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusBadRequest,
				expectedBody:        "{\"errors\":\"invalid id \\\"abc\\\"\"}\n",
			},
		},
		{
			name:   "Get missing book",
			method: http.MethodGet,
			path:   "/api/books/" + book.ID.String(),
			setupMock: func() {
				mockDB.EXPECT().GetBook(gomock.Any(), book.ID).Return(nil, domain.NotFound("book not found"))
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusNotFound,
				expectedBody:        "{\"errors\":\"book not found\"}\n",
			},
		},
		{
			name:        "Create book without condition",
			method:      http.MethodPost,
			path:        "/api/books",
			token:       tokenFor(t, owner),
			requestBody: []byte(`{"title": "Panchatantra", "author": "Vishnu Sharma"}`),
			setupMock:   func() {},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusBadRequest,
				expectedBody:        "{\"errors\":\"invalid request: condition is required\"}\n",
			},
		},
		{
			name:   "Delete someone else's book",
			method: http.MethodDelete,
			path:   "/api/books/" + book.ID.String(),
			token:  tokenFor(t, stranger),
			setupMock: func() {
				mockDB.EXPECT().GetBook(gomock.Any(), book.ID).Return(book, nil)
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusForbidden,
				expectedBody:        "{\"errors\":\"not authorized to delete this book\"}\n",
			},
		},
		{
			name:   "Delete requested book",
			method: http.MethodDelete,
			path:   "/api/books/" + book.ID.String(),
			token:  tokenFor(t, owner),
			setupMock: func() {
				mockDB.EXPECT().GetBook(gomock.Any(), book.ID).Return(book, nil)
				mockDB.EXPECT().DeleteBook(gomock.Any(), book.ID).
					Return(domain.InvalidState("book with status requested cannot be deleted"))
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusConflict,
				expectedBody:        "{\"errors\":\"book with status requested cannot be deleted\"}\n",
			},
		},
		{
			name:   "Delete own book",
			method: http.MethodDelete,
			path:   "/api/books/" + book.ID.String(),
			token:  tokenFor(t, owner),
			setupMock: func() {
				mockDB.EXPECT().GetBook(gomock.Any(), book.ID).Return(book, nil)
				mockDB.EXPECT().DeleteBook(gomock.Any(), book.ID).Return(nil)
			},
			expected: expectedData{
				expectedStatusCode: http.StatusNoContent,
			},
		},
		{
			name:   "My books",
			method: http.MethodGet,
			path:   "/api/books/my/books",
			token:  tokenFor(t, owner),
			setupMock: func() {
				mockDB.EXPECT().ListBooksByDonor(gomock.Any(), owner.UserID).Return([]models.Book{*book}, nil)
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusOK,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()
			resp, body := testRequestWithAuth(t, testServer, tc.method, tc.path, tc.requestBody, tc.token)
			assert.Equal(t, tc.expected.expectedStatusCode, resp.StatusCode)
			assert.Equal(t, tc.expected.expectedContentType, resp.Header.Get("Content-Type"))
			if tc.expected.expectedBody != "" {
				assert.Equal(t, tc.expected.expectedBody, body)
			}
		})
	}
}

func TestListBooksHandler_Page(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	mockDB.EXPECT().ListBooks(gomock.Any(), gomock.Any()).Return([]models.Book{}, 21, nil)

	resp, body := testRequest(t, testServer, http.MethodGet, "/api/books", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page models.BookPage
	require.NoError(t, json.Unmarshal([]byte(body), &page))
	assert.Equal(t, 21, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
}

func TestListBooksHandler_PageTooLarge(t *testing.T) {
	testServer, _ := newTestServer(t)

	resp, body := testRequest(t, testServer, http.MethodGet, "/api/books?page=9223372036854775807", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "{\"errors\":\"page must not exceed 1000000\"}\n", body)
}

func TestRequestHandlers_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	donor := models.Identity{UserID: uuid.New(), Role: models.RoleDonor}
	recipient := models.Identity{UserID: uuid.New(), Role: models.RoleDonor}
	bookID := uuid.New()
	requestID := uuid.New()

	testCases := []struct {
		name        string
		method      string
		path        string
		token       string
		requestBody []byte
		setupMock   func()
		expected    expectedData
	}{
		{
			name:        "Request own book",
			method:      http.MethodPost,
			path:        "/api/requests",
			token:       tokenFor(t, donor),
			requestBody: []byte(`{"bookId": "` + bookID.String() + `", "pickupMethod": "pickup"}`),
			setupMock: func() {
				mockDB.EXPECT().CreateDonationRequest(gomock.Any(), gomock.Any()).
					Return(nil, domain.InvalidOperation("you cannot request your own book"))
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusBadRequest,
				expectedBody:        "{\"errors\":\"you cannot request your own book\"}\n",
			},
		},
		{
			name:        "Request unavailable book",
			method:      http.MethodPost,
			path:        "/api/requests",
			token:       tokenFor(t, recipient),
			requestBody: []byte(`{"bookId": "` + bookID.String() + `", "pickupMethod": "pickup"}`),
			setupMock: func() {
				mockDB.EXPECT().CreateDonationRequest(gomock.Any(), gomock.Any()).
					Return(nil, domain.InvalidState("book is not available for donation (status: requested)"))
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusConflict,
				expectedBody:        "{\"errors\":\"book is not available for donation (status: requested)\"}\n",
			},
		},
		{
			name:        "Request book",
			method:      http.MethodPost,
			path:        "/api/requests",
			token:       tokenFor(t, recipient),
			requestBody: []byte(`{"bookId": "` + bookID.String() + `", "pickupMethod": "pickup", "requestMessage": "For my niece"}`),
			setupMock: func() {
				mockDB.EXPECT().CreateDonationRequest(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req *models.DonationRequest) (*models.DonationRequest, error) {
						req.DonorID = donor.UserID
						return req, nil
					})
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusCreated,
			},
		},
		{
			name:        "Recipient cannot approve",
			method:      http.MethodPut,
			path:        "/api/requests/" + requestID.String() + "/status",
			token:       tokenFor(t, recipient),
			requestBody: []byte(`{"status": "approved"}`),
			setupMock: func() {
				mockDB.EXPECT().UpdateDonationRequestStatus(gomock.Any(), requestID, models.RequestApproved, recipient.UserID).
					Return(nil, domain.Forbidden("not authorized to update this request"))
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusForbidden,
				expectedBody:        "{\"errors\":\"not authorized to update this request\"}\n",
			},
		},
		{
			name:        "Skip approval",
			method:      http.MethodPut,
			path:        "/api/requests/" + requestID.String() + "/status",
			token:       tokenFor(t, donor),
			requestBody: []byte(`{"status": "completed"}`),
			setupMock: func() {
				mockDB.EXPECT().UpdateDonationRequestStatus(gomock.Any(), requestID, models.RequestCompleted, donor.UserID).
					Return(nil, domain.InvalidState("donation request cannot move from requested to completed"))
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusConflict,
				expectedBody:        "{\"errors\":\"donation request cannot move from requested to completed\"}\n",
			},
		},
		{
			name:        "Unknown request",
			method:      http.MethodPut,
			path:        "/api/requests/" + requestID.String() + "/status",
			token:       tokenFor(t, donor),
			requestBody: []byte(`{"status": "approved"}`),
			setupMock: func() {
				mockDB.EXPECT().UpdateDonationRequestStatus(gomock.Any(), requestID, models.RequestApproved, donor.UserID).
					Return(nil, domain.NotFound("donation request not found"))
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusNotFound,
				expectedBody:        "{\"errors\":\"donation request not found\"}\n",
			},
		},
		{
			name:   "Received requests",
			method: http.MethodGet,
			path:   "/api/requests/received",
			token:  tokenFor(t, donor),
			setupMock: func() {
				mockDB.EXPECT().ListDonationRequestsByDonor(gomock.Any(), donor.UserID).Return([]models.DonationRequest{}, nil)
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusOK,
				expectedBody:        "[]",
			},
		},
		{
			name:   "Sent requests",
			method: http.MethodGet,
			path:   "/api/requests/sent",
			token:  tokenFor(t, recipient),
			setupMock: func() {
				mockDB.EXPECT().ListDonationRequestsByRecipient(gomock.Any(), recipient.UserID).Return([]models.DonationRequest{}, nil)
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusOK,
				expectedBody:        "[]",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()
			resp, body := testRequestWithAuth(t, testServer, tc.method, tc.path, tc.requestBody, tc.token)
			assert.Equal(t, tc.expected.expectedStatusCode, resp.StatusCode)
			assert.Equal(t, tc.expected.expectedContentType, resp.Header.Get("Content-Type"))
			if tc.expected.expectedBody != "" {
				assert.Equal(t, tc.expected.expectedBody, body)
			}
		})
	}
}

func TestDriveAndAllocationHandlers_Gomock(t *testing.T) {
	testServer, mockDB := newTestServer(t)

	admin := models.Identity{UserID: uuid.New(), Role: models.RoleAdmin}
	coordinator := models.Identity{UserID: uuid.New(), Role: models.RoleCoordinator}
	donor := models.Identity{UserID: uuid.New(), Role: models.RoleDonor}
	driveID := uuid.New()
	schoolID := uuid.New()
	recordID := uuid.New()
	demoted := models.Identity{UserID: uuid.New(), Role: models.RoleAdmin}
	for _, identity := range []models.Identity{admin, coordinator} {
		mockDB.EXPECT().GetUser(gomock.Any(), identity.UserID).
			Return(&models.User{ID: identity.UserID, Role: identity.Role}, nil).AnyTimes()
	}
	mockDB.EXPECT().GetUser(gomock.Any(), demoted.UserID).
		Return(&models.User{ID: demoted.UserID, Role: models.RoleDonor}, nil).AnyTimes()

	allocationBody := []byte(`{"donationDriveId": "` + driveID.String() + `", "schoolId": "` + schoolID.String() +
		`", "booksAllocated": {"2-4": 10, "4-6": 6}}`)

	testCases := []struct {
		name        string
		method      string
		path        string
		token       string
		requestBody []byte
		setupMock   func()
		expected    expectedData
	}{
		{
			name:        "Donate to closed drive",
			method:      http.MethodPost,
			path:        "/api/donations",
			token:       tokenFor(t, donor),
			requestBody: []byte(`{"donationDriveId": "` + driveID.String() + `", "booksCount": {"2-4": 3}}`),
			setupMock: func() {
				mockDB.EXPECT().SubmitDonation(gomock.Any(), gomock.Any(), domain.DefaultBadgePolicy).
					Return(nil, domain.InvalidState("donation drive Winter drive is not active"))
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusConflict,
				expectedBody:        "{\"errors\":\"donation drive Winter drive is not active\"}\n",
			},
		},
		{
			name:        "Donate nothing",
			method:      http.MethodPost,
			path:        "/api/donations",
			token:       tokenFor(t, donor),
			requestBody: []byte(`{"donationDriveId": "` + driveID.String() + `", "booksCount": {"2-4": 0}}`),
			setupMock:   func() {},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusBadRequest,
				expectedBody:        "{\"errors\":\"at least one book must be donated\"}\n",
			},
		},
		{
			name:        "Donate more than one category can hold",
			method:      http.MethodPost,
			path:        "/api/donations",
			token:       tokenFor(t, donor),
			requestBody: []byte(`{"donationDriveId": "` + driveID.String() + `", "booksCount": {"2-4": 9223372036854775807, "4-6": 1}}`),
			setupMock:   func() {},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusBadRequest,
				expectedBody:        "{\"errors\":\"invalid request: booksCount[2-4] must be at most 1000000\"}\n",
			},
		},
		{
			name:        "Donate to drive",
			method:      http.MethodPost,
			path:        "/api/donations",
			token:       tokenFor(t, donor),
			requestBody: []byte(`{"donationDriveId": "` + driveID.String() + `", "booksCount": {"2-4": 3, "8-10": 2}}`),
			setupMock: func() {
				mockDB.EXPECT().SubmitDonation(gomock.Any(), gomock.Any(), domain.DefaultBadgePolicy).
					DoAndReturn(func(ctx context.Context, record *models.DonationRecord, _ domain.BadgePolicy) (*models.DonationRecord, error) {
						return record, nil
					})
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusCreated,
			},
		},
		{
			name:        "Donor cannot mark collected",
			method:      http.MethodPut,
			path:        "/api/donations/" + recordID.String() + "/status",
			token:       tokenFor(t, donor),
			requestBody: []byte(`{"status": "collected"}`),
			setupMock:   func() {},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusForbidden,
				expectedBody:        "{\"errors\":\"access denied: update donation status requires role admin or coordinator\"}\n",
			},
		},
		{
			name:        "Coordinator marks collected",
			method:      http.MethodPut,
			path:        "/api/donations/" + recordID.String() + "/status",
			token:       tokenFor(t, coordinator),
			requestBody: []byte(`{"status": "collected"}`),
			setupMock: func() {
				mockDB.EXPECT().UpdateDonationRecordStatus(gomock.Any(), recordID, models.RecordCollected, gomock.Not(gomock.Nil())).
					Return(&models.DonationRecord{ID: recordID, Status: models.RecordCollected}, nil)
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusOK,
			},
		},
		{
			name:        "Coordinator cannot allocate",
			method:      http.MethodPost,
			path:        "/api/allocations",
			token:       tokenFor(t, coordinator),
			requestBody: allocationBody,
			setupMock:   func() {},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusForbidden,
				expectedBody:        "{\"errors\":\"access denied: allocate books requires role admin\"}\n",
			},
		},
		{
			name:        "Demoted admin cannot allocate",
			method:      http.MethodPost,
			path:        "/api/allocations",
			token:       tokenFor(t, demoted),
			requestBody: allocationBody,
			setupMock:   func() {},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusForbidden,
				expectedBody:        "{\"errors\":\"access denied: allocate books requires role admin\"}\n",
			},
		},
		{
			name:        "Allocate more than received",
			method:      http.MethodPost,
			path:        "/api/allocations",
			token:       tokenFor(t, admin),
			requestBody: allocationBody,
			setupMock: func() {
				mockDB.EXPECT().AllocateBooks(gomock.Any(), gomock.Any()).Return(nil, &domain.InsufficientInventoryError{
					Shortfalls: []domain.Shortfall{{Category: models.AgeFourToSix, Available: 5, Requested: 6}},
				})
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusUnprocessableEntity,
				expectedBody:        "{\"errors\":\"not enough books in category 4-6 (available: 5, requested: 6)\"}\n",
			},
		},
		{
			name:        "Allocate to missing school",
			method:      http.MethodPost,
			path:        "/api/allocations",
			token:       tokenFor(t, admin),
			requestBody: allocationBody,
			setupMock: func() {
				mockDB.EXPECT().AllocateBooks(gomock.Any(), gomock.Any()).Return(nil, domain.NotFound("school not found"))
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusNotFound,
				expectedBody:        "{\"errors\":\"school not found\"}\n",
			},
		},
		{
			name:        "Allocate",
			method:      http.MethodPost,
			path:        "/api/allocations",
			token:       tokenFor(t, admin),
			requestBody: allocationBody,
			setupMock: func() {
				mockDB.EXPECT().AllocateBooks(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, allocation *models.BookAllocation) (*models.BookAllocation, error) {
						return allocation, nil
					})
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusCreated,
			},
		},
		{
			name:   "List allocations for a drive",
			method: http.MethodGet,
			path:   "/api/allocations?driveId=" + driveID.String(),
			token:  tokenFor(t, admin),
			setupMock: func() {
				mockDB.EXPECT().ListAllocations(gomock.Any(), models.AllocationFilter{DriveID: &driveID}).
					Return([]models.BookAllocation{}, nil)
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusOK,
				expectedBody:        "[]",
			},
		},
		{
			name:      "List allocations with bad school id",
			method:    http.MethodGet,
			path:      "/api/allocations?schoolId=42",
			token:     tokenFor(t, admin),
			setupMock: func() {},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusBadRequest,
				expectedBody:        "{\"errors\":\"invalid schoolId \\\"42\\\"\"}\n",
			},
		},
		{
			name:   "Active drives for any user",
			method: http.MethodGet,
			path:   "/api/drives/active",
			token:  tokenFor(t, donor),
			setupMock: func() {
				mockDB.EXPECT().ListDrives(gomock.Any(), models.DriveActive).Return([]models.DonationDrive{}, nil)
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusOK,
				expectedBody:        "[]",
			},
		},
		{
			name:      "All drives for admin only",
			method:    http.MethodGet,
			path:      "/api/drives",
			token:     tokenFor(t, donor),
			setupMock: func() {},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusForbidden,
				expectedBody:        "{\"errors\":\"access denied: manage donation drives requires role admin\"}\n",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()
			resp, body := testRequestWithAuth(t, testServer, tc.method, tc.path, tc.requestBody, tc.token)
			assert.Equal(t, tc.expected.expectedStatusCode, resp.StatusCode)
			assert.Equal(t, tc.expected.expectedContentType, resp.Header.Get("Content-Type"))
			if tc.expected.expectedBody != "" {
				assert.Equal(t, tc.expected.expectedBody, body)
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		err     error
		status  int
		message string
	}{
		{domain.Unauthorized("no"), http.StatusUnauthorized, "no"},
		{domain.Forbidden("no"), http.StatusForbidden, "no"},
		{domain.NotFound("gone"), http.StatusNotFound, "gone"},
		{domain.InvalidOperation("bad"), http.StatusBadRequest, "bad"},
		{domain.InvalidState("late"), http.StatusConflict, "late"},
		{&domain.InsufficientInventoryError{}, http.StatusUnprocessableEntity, "not enough books in "},
		{errors.New("pq: connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range testCases {
		status, message := statusFor(tc.err)
		assert.Equal(t, tc.status, status)
		assert.Equal(t, tc.message, message)
	}
}
