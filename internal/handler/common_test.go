package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// createJSONHTTPRequest builds an HTTP request with a JSON body.
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	jsonData, err := json.Marshal(data)
	if err != nil {
		jsonData = []byte("")
	}
	req, err := http.NewRequest(method, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

// createMultipartRequest builds the kind of request the admin form submits:
// text fields plus an optional image file part.
func createMultipartRequest(t *testing.T, method, url string, fields map[string]string, fileName string, fileContent []byte) *http.Request {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if fileName != "" {
		part, err := writer.CreateFormFile("image", fileName)
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func validCreateFields() map[string]string {
	return map[string]string{
		"title":       "Concert",
		"category":    "Music",
		"location":    "Hall A",
		"price":       "500",
		"date":        "2025-01-01",
		"imageUrl":    "http://x/img.png",
		"description": "desc",
	}
}
