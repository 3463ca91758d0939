package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"todoapp/internal/handler"
	"todoapp/internal/repo"
	"todoapp/internal/service"
)

// SetupServer поднимает httptest-сервер со свежим in-memory хранилищем
func SetupServer(t *testing.T) *httptest.Server {
	t.Helper()

	taskRepo := repo.NewMemoryRepo()
	taskService := service.NewTaskService(taskRepo)
	taskHandler := handler.NewTaskHandler(taskService, zap.NewNop())

	server := httptest.NewServer(handler.NewRouter(taskHandler))
	t.Cleanup(server.Close)
	return server
}

// PostJSON шлет POST с JSON-телом и декодирует ответ в out (если не nil)
func PostJSON(t *testing.T, url string, payload any, out any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	decodeBody(t, resp, out)
	return resp
}

// Do выполняет запрос произвольного метода
func Do(t *testing.T, method, url string, payload any, out any) *http.Response {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	decodeBody(t, resp, out)
	return resp
}

// GetJSON шлет GET и декодирует ответ
func GetJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	decodeBody(t, resp, out)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if out == nil {
		return
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// TaskURL строит URL ресурса задачи
func TaskURL(base string, id int64) string {
	return fmt.Sprintf("%s/api/tasks/%d", base, id)
}
