package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"weddingwall/internal/database"
	"weddingwall/internal/domain/admin"
	"weddingwall/internal/domain/contact"
	"weddingwall/internal/domain/gallery"
	"weddingwall/internal/domain/upload"
	"weddingwall/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:e2e_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, db.AutoMigrate(&upload.Upload{}, &contact.Contact{}))

	store := upload.NewStore(t.TempDir())

	uploadRepo := upload.NewRepository(db)
	uploadHandler := upload.NewHandler(upload.NewService(uploadRepo, store), store)

	contactRepo := contact.NewRepository(db)
	contactHandler := contact.NewHandler(contact.NewService(contactRepo))

	adminHandler := admin.NewHandler(admin.NewService(uploadRepo, contactRepo))
	galleryHandler := gallery.NewHandler(gallery.NewService(uploadRepo))

	r := gin.New()
	r.Use(middleware.ErrorLogger(), middleware.CORS())

	root := r.Group("")
	upload.RegisterRoutes(root, uploadHandler)
	contact.RegisterRoutes(root, contactHandler)
	admin.RegisterRoutes(root, adminHandler)
	gallery.RegisterRoutes(root, galleryHandler)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func postUpload(t *testing.T, r *gin.Engine, uploaderName, message string, files map[string][]byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("uploaderName", uploaderName))
	if message != "" {
		require.NoError(t, w.WriteField("message", message))
	}
	for name, content := range files {
		fw, err := w.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func postForm(r *gin.Engine, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func getJSON(t *testing.T, r *gin.Engine, path string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if out != nil && resp.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), out))
	}
	return resp
}

func TestUploadModerationFlow(t *testing.T) {
	r := setupRouter(t)

	// Guest uploads a 1 KiB photo.
	resp := postUpload(t, r, "Ayşe", "congrats!", map[string][]byte{
		"photo.jpg": bytes.Repeat([]byte("x"), 1024),
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var uploadOut struct {
		Message string `json:"message"`
		Files   []struct {
			OriginalFilename string `json:"original_filename"`
			Size             int64  `json:"size"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &uploadOut))
	require.Len(t, uploadOut.Files, 1)
	assert.Equal(t, "photo.jpg", uploadOut.Files[0].OriginalFilename)
	assert.Equal(t, int64(1024), uploadOut.Files[0].Size)

	// Admin sees it, unapproved.
	var uploads []map[string]any
	resp = getJSON(t, r, "/admin/uploads", &uploads)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Len(t, uploads, 1)
	assert.Equal(t, "Ayşe", uploads[0]["uploader_name"])
	assert.Equal(t, "image", uploads[0]["file_type"])
	assert.Equal(t, false, uploads[0]["is_approved"])

	id := int64(uploads[0]["id"].(float64))
	storedName := uploads[0]["filename"].(string)

	// Not in the gallery until approved.
	var entries []map[string]any
	resp = getJSON(t, r, "/gallery", &entries)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, entries)

	// Approve, twice — second must succeed silently.
	resp = postForm(r, "/admin/uploads/"+strconv.FormatInt(id, 10)+"/approve", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	resp = postForm(r, "/admin/uploads/"+strconv.FormatInt(id, 10)+"/approve", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	// Gallery now shows exactly the public fields.
	entries = nil
	resp = getJSON(t, r, "/gallery", &entries)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Len(t, entries, 1)
	assert.Equal(t, storedName, entries[0]["filename"])
	assert.Equal(t, "image", entries[0]["type"])
	assert.Equal(t, "Ayşe", entries[0]["uploader_name"])
	for _, private := range []string{"original_filename", "message", "file_size", "is_approved"} {
		assert.NotContains(t, entries[0], private)
	}

	// The stored bytes are retrievable.
	req := httptest.NewRequest(http.MethodGet, "/uploads/"+storedName, nil)
	fileResp := httptest.NewRecorder()
	r.ServeHTTP(fileResp, req)
	require.Equal(t, http.StatusOK, fileResp.Code)
	data, err := io.ReadAll(fileResp.Body)
	require.NoError(t, err)
	assert.Len(t, data, 1024)
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	r := setupRouter(t)

	resp := postUpload(t, r, "Guest", "", map[string][]byte{"doc.pdf": []byte("%PDF")})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var uploads []map[string]any
	resp = getJSON(t, r, "/admin/uploads", &uploads)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, uploads)
}

func TestApprovedVideoStaysOutOfGallery(t *testing.T) {
	r := setupRouter(t)

	resp := postUpload(t, r, "Marat", "", map[string][]byte{"speech.mp4": []byte("video")})
	require.Equal(t, http.StatusOK, resp.Code)

	var uploads []map[string]any
	getJSON(t, r, "/admin/uploads", &uploads)
	require.Len(t, uploads, 1)
	assert.Equal(t, "video", uploads[0]["file_type"])

	id := strconv.Itoa(int(uploads[0]["id"].(float64)))
	resp = postForm(r, "/admin/uploads/"+id+"/approve", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var entries []map[string]any
	resp = getJSON(t, r, "/gallery", &entries)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, entries, "videos are excluded from the public gallery")
}

func TestContactFlow(t *testing.T) {
	r := setupRouter(t)

	// Invalid email: neither '@' nor '.'.
	resp := postForm(r, "/contact", url.Values{
		"name": {"Asel"}, "email": {"not-an-email"}, "message": {"hi"},
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	resp = postForm(r, "/contact", url.Values{
		"name": {"Asel"}, "email": {"asel@mail.kz"}, "message": {"hi"},
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var contacts []map[string]any
	resp = getJSON(t, r, "/admin/contacts", &contacts)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Asel", contacts[0]["name"])
	// is_read is schema-only: nothing ever flips it.
	assert.Equal(t, false, contacts[0]["is_read"])
}

func TestApproveNonexistentUpload(t *testing.T) {
	r := setupRouter(t)

	resp := postForm(r, "/admin/uploads/9999/approve", nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHealth(t *testing.T) {
	r := setupRouter(t)

	resp := getJSON(t, r, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
}
