package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	handlers "github.com/rahul12st/Manipal-Marketplace-backend/internal/handlers"
	repo "github.com/rahul12st/Manipal-Marketplace-backend/internal/repo"
	uploads "github.com/rahul12st/Manipal-Marketplace-backend/internal/uploads"

	"github.com/go-chi/chi"
)

var (
	router      *chi.Mux
	productRepo *repo.InMemoryProductRepository
	userRepo    *repo.InMemoryUserRepository
	uploadDir   string
)

func TestMain(m *testing.M) {
	var err error
	uploadDir, err = os.MkdirTemp("", "uploads")
	if err != nil {
		log.Fatal(err)
	}

	productRepo = repo.NewInMemoryProductRepository()
	handlers.SetProductRepo(productRepo)

	userRepo = repo.NewInMemoryUserRepository()
	handlers.SetUserRepo(userRepo)

	store, err := uploads.NewDiskStore(uploadDir)
	if err != nil {
		log.Fatal(err)
	}
	handlers.SetUploadStore(store)
	handlers.SetUploadDir(uploadDir)

	router = handlers.NewRouter("http://localhost:3000")

	code := m.Run()
	os.RemoveAll(uploadDir)
	os.Exit(code)
}

func clearAll() {
	productRepo.Clear()
	userRepo.Clear()
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("error marshalling payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()

	var resp envelope
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if out == nil {
		return
	}
	if len(resp.Data) == 0 {
		// Empty collections are dropped by the envelope's omitempty.
		resp.Data = json.RawMessage("null")
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		t.Fatalf("error decoding response data: %v", err)
	}
}

type signupPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

func validSignup(email string) signupPayload {
	return signupPayload{
		FirstName: "Rahul",
		LastName:  "Sharma",
		Email:     email,
		Phone:     "9876543210",
		Password:  "secret123",
	}
}

func signupUser(t *testing.T, email string) handlers.SignInData {
	t.Helper()

	w := doJSON(t, http.MethodPost, "/signup", validSignup(email))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created for signup, got %d: %s", w.Code, w.Body.String())
	}

	var data handlers.SignInData
	decodeData(t, w, &data)
	if data.User_ID == "" {
		t.Fatal("signup returned empty user id")
	}
	return data
}

// addProduct posts a multipart form to /add-product. images maps a field name
// (pimage or pimage2) to the file contents to upload under it.
func addProduct(t *testing.T, fields map[string]string, images map[string][]byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			t.Fatalf("error writing field %q: %v", key, err)
		}
	}
	for field, content := range images {
		fw, err := mw.CreateFormFile(field, fmt.Sprintf("%s.jpg", field))
		if err != nil {
			t.Fatalf("error creating form file %q: %v", field, err)
		}
		if _, err := fw.Write(content); err != nil {
			t.Fatalf("error writing form file %q: %v", field, err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("error closing multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/add-product", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func uploadedFileCount(t *testing.T) int {
	t.Helper()

	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		t.Fatalf("error reading upload dir: %v", err)
	}
	return len(entries)
}
