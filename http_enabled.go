//go:build http_enabled

package main

import (
	"bytes"
	"fmt"
	"github.com/google/uuid"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"
)

const playthroughEndpoint = "https://playful-patterns.com/submit-playthrough-minipong.php"

var httpClient = &http.Client{Timeout: 30 * time.Second}

// makeHttpRequest makes a POST HTTP request to an endpoint and returns the
// body of the response as a string.
func makeHttpRequest(url string, fields map[string]string, files map[string][]byte) (string, error) {
	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return "", err
		}
	}
	for k, v := range files {
		part, err := writer.CreateFormFile(k, k)
		if err != nil {
			return "", err
		}
		if _, err = part.Write(v); err != nil {
			return "", err
		}
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	request, err := http.NewRequest("POST", url, &requestBody)
	if err != nil {
		return "", err
	}
	request.Header.Set("content-type", writer.FormDataContentType())

	response, err := httpClient.Do(request)
	if err != nil {
		return "", err
	}
	defer func(body io.ReadCloser) { _ = body.Close() }(response.Body)
	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("http request failed: %d", response.StatusCode)
	}
	data, err := io.ReadAll(response.Body)
	return string(data), err
}

func playthroughFields(user string,
	releaseVersion int64,
	simulationVersion int64,
	inputVersion int64,
	id uuid.UUID) map[string]string {
	return map[string]string{
		"user":               user,
		"release_version":    strconv.FormatInt(releaseVersion, 10),
		"simulation_version": strconv.FormatInt(simulationVersion, 10),
		"input_version":      strconv.FormatInt(inputVersion, 10),
		"id":                 id.String()}
}

func InitializeIdInDbHttp(user string,
	releaseVersion int64,
	simulationVersion int64,
	inputVersion int64,
	id uuid.UUID) error {
	_, err := makeHttpRequest(playthroughEndpoint,
		playthroughFields(user, releaseVersion, simulationVersion,
			inputVersion, id),
		map[string][]byte{})
	return err
}

func UploadDataToDbHttp(user string,
	releaseVersion int64,
	simulationVersion int64,
	inputVersion int64,
	id uuid.UUID, data []byte) error {
	_, err := makeHttpRequest(playthroughEndpoint,
		playthroughFields(user, releaseVersion, simulationVersion,
			inputVersion, id),
		map[string][]byte{"playthrough": data})
	return err
}
