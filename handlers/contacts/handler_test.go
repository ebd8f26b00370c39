package contacts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/aditbhattarai/Adit-ko-website/db"
	"github.com/aditbhattarai/Adit-ko-website/models"
	"github.com/aditbhattarai/Adit-ko-website/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

type fakeNotifier struct {
	err    error
	called chan struct{}
}

func (f *fakeNotifier) Send(name, email, subject, message string) error {
	if f.called != nil {
		select {
		case f.called <- struct{}{}:
		default:
		}
	}
	return f.err
}

func setupRouter(store *db.Store, notifier Notifier) *gin.Engine {
	r := testutils.SetupTestRouter()
	handler := NewHandler(store, notifier)
	r.POST("/api/contact", handler.Create)
	r.GET("/api/contacts", handler.GetAll)
	r.GET("/api/contacts/:id", handler.GetByID)
	r.DELETE("/api/contacts/:id", handler.Delete)
	return r
}

func postContact(r *gin.Engine, body map[string]string) *httptest.ResponseRecorder {
	jsonData, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, "/api/contact", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func validContact() map[string]string {
	return map[string]string{
		"name":    "A",
		"email":   "a@x.com",
		"subject": "S",
		"message": "M",
	}
}

func TestCreateContact_Success(t *testing.T) {
	store, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	notifier := &fakeNotifier{called: make(chan struct{}, 1)}
	r := setupRouter(store, notifier)

	resp := postContact(r, validContact())

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, true, respBody["success"])
	assert.Equal(t, "Thank you! Your message has been received.", respBody["message"])
	assert.Greater(t, respBody["id"].(float64), float64(0))

	count, err := store.CountContacts()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	select {
	case <-notifier.called:
	case <-time.After(2 * time.Second):
		t.Fatal("the notifier was never invoked")
	}
}

func TestCreateContact_IDsIncrease(t *testing.T) {
	store, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := setupRouter(store, &fakeNotifier{})

	var previous float64
	for i := 0; i < 3; i++ {
		resp := postContact(r, validContact())
		assert.Equal(t, http.StatusOK, resp.Code)

		var respBody map[string]interface{}
		json.Unmarshal(resp.Body.Bytes(), &respBody)
		id := respBody["id"].(float64)
		assert.Greater(t, id, previous)
		previous = id
	}
}

func TestCreateContact_MissingField(t *testing.T) {
	for _, field := range []string{"name", "email", "subject", "message"} {
		t.Run(field, func(t *testing.T) {
			store, cleanup := testutils.SetupTestDB(t)
			defer cleanup()

			notifier := &fakeNotifier{called: make(chan struct{}, 1)}
			r := setupRouter(store, notifier)

			body := validContact()
			body[field] = ""
			resp := postContact(r, body)

			assert.Equal(t, http.StatusBadRequest, resp.Code)

			var respBody map[string]interface{}
			json.Unmarshal(resp.Body.Bytes(), &respBody)
			assert.Equal(t, false, respBody["success"])
			assert.Equal(t, "All fields are required", respBody["message"])

			count, err := store.CountContacts()
			assert.NoError(t, err)
			assert.Equal(t, int64(0), count)

			select {
			case <-notifier.called:
				t.Fatal("the notifier must not run for a rejected submission")
			default:
			}
		})
	}
}

func TestCreateContact_NotifierFailureStillSucceeds(t *testing.T) {
	store, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	notifier := &fakeNotifier{err: fmt.Errorf("SMTP unreachable"), called: make(chan struct{}, 1)}
	r := setupRouter(store, notifier)

	resp := postContact(r, validContact())

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, true, respBody["success"])

	// The row stays in the store, the mail failure never rolls it back.
	count, err := store.CountContacts()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCreateContact_StorageFailure(t *testing.T) {
	store, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	store.Close()
	notifier := &fakeNotifier{called: make(chan struct{}, 1)}
	r := setupRouter(store, notifier)

	resp := postContact(r, validContact())

	assert.Equal(t, http.StatusInternalServerError, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, false, respBody["success"])
	assert.Equal(t, "Error saving contact information", respBody["message"])

	select {
	case <-notifier.called:
		t.Fatal("the notifier must not run when the insert fails")
	default:
	}
}

func TestGetAllContacts_NewestFirst(t *testing.T) {
	store, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"S1", "S2", "S3"} {
		contact := models.Contact{
			Name:      name,
			Email:     "a@x.com",
			Subject:   "S",
			Message:   "M",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		assert.NoError(t, store.InsertContact(&contact))
	}

	r := setupRouter(store, &fakeNotifier{})
	req, _ := http.NewRequest(http.MethodGet, "/api/contacts", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody struct {
		Success  bool             `json:"success"`
		Contacts []models.Contact `json:"contacts"`
	}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.True(t, respBody.Success)
	assert.Len(t, respBody.Contacts, 3)
	assert.Equal(t, "S3", respBody.Contacts[0].Name)
	assert.Equal(t, "S1", respBody.Contacts[2].Name)
}

func TestGetContactByID(t *testing.T) {
	store, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	contact := models.Contact{Name: "A", Email: "a@x.com", Subject: "S", Message: "M"}
	assert.NoError(t, store.InsertContact(&contact))

	r := setupRouter(store, &fakeNotifier{})

	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/contacts/%d", contact.ID), nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody struct {
		Success bool           `json:"success"`
		Contact models.Contact `json:"contact"`
	}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.True(t, respBody.Success)
	assert.Equal(t, "A", respBody.Contact.Name)
}

func TestGetContactByID_NotFound(t *testing.T) {
	store, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := setupRouter(store, &fakeNotifier{})

	for _, id := range []string{"42", "not-a-number"} {
		req, _ := http.NewRequest(http.MethodGet, "/api/contacts/"+id, nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)

		var respBody map[string]interface{}
		json.Unmarshal(resp.Body.Bytes(), &respBody)
		assert.Equal(t, false, respBody["success"])
		assert.Equal(t, "Contact not found", respBody["message"])
	}
}

func TestDeleteContact_Flow(t *testing.T) {
	store, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	contact := models.Contact{Name: "A", Email: "a@x.com", Subject: "S", Message: "M"}
	assert.NoError(t, store.InsertContact(&contact))

	r := setupRouter(store, &fakeNotifier{})
	url := fmt.Sprintf("/api/contacts/%d", contact.ID)

	req, _ := http.NewRequest(http.MethodDelete, url, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)

	req, _ = http.NewRequest(http.MethodGet, url, nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	// The second delete is an idempotent no-op reported as not found.
	req, _ = http.NewRequest(http.MethodDelete, url, nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
