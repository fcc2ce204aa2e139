package httpclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"sort"
	"strings"
)

// MultipartBody is a multipart/form-data request body. Set it as
// Request.Body and the adapter writes the parts and the boundary header.
type MultipartBody struct {
	// Fields are simple form fields, written in key order.
	Fields map[string]string
	// Files are file parts, written after the fields.
	Files []FileField
}

// FileField is one file part of a multipart body.
type FileField struct {
	// FieldName is the form field name, "file" for Baasic stream uploads.
	FieldName string
	// FileName is sent in the Content-Disposition header.
	FileName string
	// ContentType defaults to application/octet-stream.
	ContentType string
	// Reader supplies the content; Data is used when Reader is nil.
	Reader io.Reader
	Data   []byte
}

// File creates a multipart body holding a single file part.
func File(fieldName, fileName string, r io.Reader) *MultipartBody {
	return &MultipartBody{Files: []FileField{{FieldName: fieldName, FileName: fileName, Reader: r}}}
}

// encode builds the multipart body and returns the reader and content-type header.
func (m *MultipartBody) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(m.Fields))
	for k := range m.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.WriteField(k, m.Fields[k]); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", k, err)
		}
	}

	for _, f := range m.Files {
		if err := writeFile(w, f); err != nil {
			return nil, "", fmt.Errorf("write file %s: %w", f.FieldName, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func writeFile(w *multipart.Writer, f FileField) error {
	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, quoteEscaper.Replace(f.FieldName), quoteEscaper.Replace(f.FileName)))
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return err
	}
	if f.Reader != nil {
		_, err = io.Copy(part, f.Reader)
		return err
	}
	_, err = part.Write(f.Data)
	return err
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")
