package httpclient

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"
)

func readParts(t *testing.T, r io.Reader, contentType string) []*multipart.Part {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("ParseMediaType error: %v", err)
	}
	if mediaType != "multipart/form-data" {
		t.Fatalf("media type = %q, want multipart/form-data", mediaType)
	}
	mr := multipart.NewReader(r, params["boundary"])
	var parts []*multipart.Part
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return parts
		}
		if err != nil {
			t.Fatalf("NextPart error: %v", err)
		}
		data, _ := io.ReadAll(part)
		part.Header.Set("X-Test-Data", string(data))
		parts = append(parts, part)
	}
}

func TestMultipartBody_FieldsInKeyOrder(t *testing.T) {
	mp := &MultipartBody{Fields: map[string]string{"width": "100", "height": "50"}}

	reader, contentType, err := mp.encode()
	if err != nil {
		t.Fatalf("encode() error: %v", err)
	}
	parts := readParts(t, reader, contentType)
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	if parts[0].FormName() != "height" || parts[1].FormName() != "width" {
		t.Errorf("expected key order, got %s,%s", parts[0].FormName(), parts[1].FormName())
	}
	if parts[1].Header.Get("X-Test-Data") != "100" {
		t.Errorf("unexpected width %q", parts[1].Header.Get("X-Test-Data"))
	}
}

func TestMultipartBody_File(t *testing.T) {
	mp := File("file", "my \"avatar\".png", strings.NewReader("png bytes"))

	reader, contentType, err := mp.encode()
	if err != nil {
		t.Fatalf("encode() error: %v", err)
	}
	parts := readParts(t, reader, contentType)
	if len(parts) != 1 {
		t.Fatalf("expected 1 part, got %d", len(parts))
	}
	part := parts[0]
	if part.FormName() != "file" {
		t.Errorf("field = %q, want file", part.FormName())
	}
	if part.FileName() != `my "avatar".png` {
		t.Errorf("filename = %q", part.FileName())
	}
	if part.Header.Get("Content-Type") != "application/octet-stream" {
		t.Errorf("expected default content type, got %q", part.Header.Get("Content-Type"))
	}
	if part.Header.Get("X-Test-Data") != "png bytes" {
		t.Errorf("unexpected data %q", part.Header.Get("X-Test-Data"))
	}
}

func TestMultipartBody_DataAndContentType(t *testing.T) {
	mp := &MultipartBody{
		Fields: map[string]string{"width": "10"},
		Files:  []FileField{{FieldName: "file", FileName: "a.jpg", ContentType: "image/jpeg", Data: []byte("jpg")}},
	}

	reader, _, err := mp.encode()
	if err != nil {
		t.Fatalf("encode() error: %v", err)
	}
	data, _ := io.ReadAll(reader)
	if !bytes.Contains(data, []byte("Content-Type: image/jpeg")) {
		t.Error("expected Content-Type: image/jpeg in multipart body")
	}
	if bytes.Index(data, []byte(`name="width"`)) > bytes.Index(data, []byte(`name="file"`)) {
		t.Error("expected fields before files")
	}
}
