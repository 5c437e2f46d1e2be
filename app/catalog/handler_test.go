package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Tests: GET /catalog ---

func TestHandleGet(t *testing.T) {
	testCases := []struct {
		name          string
		url           string
		wantIDs       []int
		wantMessage   string
		checkResponse func(t *testing.T, resp Response)
	}{
		{
			name:    "No filters",
			url:     "/catalog",
			wantIDs: []int{1, 2, 3, 4, 5},
			checkResponse: func(t *testing.T, resp Response) {
				require.NotNil(t, resp.Rows[0].User)
				assert.Equal(t, "Anna", resp.Rows[0].User.Name)
				assert.Nil(t, resp.Rows[3].Category)
				assert.Nil(t, resp.Rows[3].User)
			},
		},
		{
			name:    "Filter by user",
			url:     "/catalog?user=2",
			wantIDs: []int{1, 2},
		},
		{
			name:    "Filter by query",
			url:     "/catalog?query=MI",
			wantIDs: []int{1, 3},
		},
		{
			name:    "Combined filters",
			url:     "/catalog?user=1&query=water",
			wantIDs: []int{3},
		},
		{
			name:        "Unknown user",
			url:         "/catalog?user=999&query=milk",
			wantIDs:     []int{},
			wantMessage: NoMatchMessage,
		},
		{
			name:    "Invalid user is ignored",
			url:     "/catalog?user=abc",
			wantIDs: []int{1, 2, 3, 4, 5},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			c := newTestController()
			handler := NewCatalogHandler(c)
			req := httptest.NewRequest("GET", tc.url, nil)
			rec := httptest.NewRecorder()

			// Act
			handler.HandleGet(rec, req)

			// Assert
			assert.Equal(t, http.StatusOK, rec.Code)
			var resp Response
			err := json.NewDecoder(rec.Body).Decode(&resp)
			assert.NoError(t, err)
			assert.Equal(t, len(tc.wantIDs), resp.Total)
			assert.Equal(t, tc.wantIDs, rowIDs(resp.Rows))
			assert.Equal(t, tc.wantMessage, resp.Message)
			if tc.checkResponse != nil {
				tc.checkResponse(t, resp)
			}

			assert.Equal(t, State{}, c.View().State, "stateless query should not change the view")
		})
	}
}

func TestHandleGetEmptyRowsEncodeAsArray(t *testing.T) {
	handler := NewCatalogHandler(newTestController())
	req := httptest.NewRequest("GET", "/catalog?user=999", nil)
	rec := httptest.NewRecorder()

	handler.HandleGet(rec, req)

	assert.Contains(t, rec.Body.String(), `"rows":[]`)
}

// --- Tests: view intents ---

func newViewMux(c *Controller) *http.ServeMux {
	h := NewCatalogHandler(c)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /view", h.HandleGetView)
	mux.HandleFunc("PUT /view/user/{id}", h.HandleSelectUser)
	mux.HandleFunc("PUT /view/query", h.HandleSetQuery)
	mux.HandleFunc("DELETE /view/query", h.HandleClearQuery)
	mux.HandleFunc("POST /view/reset", h.HandleReset)
	return mux
}

func TestViewIntents(t *testing.T) {
	testCases := []struct {
		name               string
		setup              func(c *Controller)
		method             string
		url                string
		body               string
		expectedStatusCode int
		checkResponse      func(t *testing.T, resp ViewResponse)
		checkError         string
	}{
		{
			name:               "Get initial view",
			method:             "GET",
			url:                "/view",
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, resp ViewResponse) {
				assert.Equal(t, 0, resp.SelectedUserID)
				assert.Equal(t, "", resp.Query)
				assert.False(t, resp.CanClearQuery)
				assert.Equal(t, 5, resp.Total)
				require.Len(t, resp.UserTabs, 4)
				assert.Equal(t, UserTab{ID: 0, Name: "All", Active: true}, resp.UserTabs[0])
				assert.False(t, resp.UserTabs[2].Active)
			},
		},
		{
			name:               "Select user",
			method:             "PUT",
			url:                "/view/user/2",
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, resp ViewResponse) {
				assert.Equal(t, 2, resp.SelectedUserID)
				assert.Equal(t, []int{1, 2}, rowIDs(resp.Rows))
				assert.False(t, resp.UserTabs[0].Active)
				assert.Equal(t, UserTab{ID: 2, Name: "Anna", Active: true}, resp.UserTabs[2])
			},
		},
		{
			name:               "Select user with invalid id",
			method:             "PUT",
			url:                "/view/user/anna",
			expectedStatusCode: http.StatusBadRequest,
			checkError:         "Invalid user id",
		},
		{
			name:               "Set query",
			method:             "PUT",
			url:                "/view/query",
			body:               `{"query":"Mi"}`,
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, resp ViewResponse) {
				assert.Equal(t, "Mi", resp.Query)
				assert.True(t, resp.CanClearQuery)
				assert.Equal(t, []int{1, 3}, rowIDs(resp.Rows))
			},
		},
		{
			name:               "Set query to no matches",
			method:             "PUT",
			url:                "/view/query",
			body:               `{"query":"zzz"}`,
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, resp ViewResponse) {
				assert.Equal(t, 0, resp.Total)
				assert.Empty(t, resp.Rows)
				assert.Equal(t, NoMatchMessage, resp.Message)
			},
		},
		{
			name:               "Set query with invalid JSON",
			method:             "PUT",
			url:                "/view/query",
			body:               `{invalid json`,
			expectedStatusCode: http.StatusBadRequest,
			checkError:         "Invalid JSON body",
		},
		{
			name:               "Set query without query field",
			method:             "PUT",
			url:                "/view/query",
			body:               `{}`,
			expectedStatusCode: http.StatusBadRequest,
			checkError:         "Missing query",
		},
		{
			name: "Clear query",
			setup: func(c *Controller) {
				c.SelectUser(1)
				c.SetQuery("bread")
			},
			method:             "DELETE",
			url:                "/view/query",
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, resp ViewResponse) {
				assert.Equal(t, 1, resp.SelectedUserID)
				assert.Equal(t, "", resp.Query)
				assert.Equal(t, []int{3}, rowIDs(resp.Rows))
			},
		},
		{
			name: "Reset all",
			setup: func(c *Controller) {
				c.SelectUser(999)
				c.SetQuery("bread")
			},
			method:             "POST",
			url:                "/view/reset",
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, resp ViewResponse) {
				assert.Equal(t, 0, resp.SelectedUserID)
				assert.Equal(t, "", resp.Query)
				assert.Equal(t, 5, resp.Total)
				assert.Empty(t, resp.Message)
			},
		},
		{
			name:               "Wrong method",
			method:             "POST",
			url:                "/view/query",
			expectedStatusCode: http.StatusMethodNotAllowed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			c := NewController(newTestData(), zerolog.Nop())
			if tc.setup != nil {
				tc.setup(c)
			}
			mux := newViewMux(c)
			req := httptest.NewRequest(tc.method, tc.url, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			// Act
			mux.ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)

			if tc.checkResponse != nil {
				var resp ViewResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				tc.checkResponse(t, resp)
			}

			if tc.checkError != "" {
				var errResp map[string]string
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, tc.checkError, errResp["error"])
			}
		})
	}
}
