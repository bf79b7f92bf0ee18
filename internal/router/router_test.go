package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medguardian/internal/adapters/auth/jwtauth"
	"medguardian/internal/adapters/storage/sqlstore"
	"medguardian/internal/ports/auth"
	"medguardian/internal/router"
)

func TestHTTP_EndToEnd_IntakeNotifiesFamily(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	runIntakeFlow(t, ts.URL)
}

func TestHTTP_EndToEnd_SQLite(t *testing.T) {
	db, err := sqlstore.Open(sqlstore.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()
	if _, err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ts := httptest.NewServer(router.NewRouter(router.Options{DB: db}))
	defer ts.Close()

	runIntakeFlow(t, ts.URL)
}

func runIntakeFlow(t *testing.T, baseURL string) {
	t.Helper()

	userID := "user-1"

	// 1) Medicamento 2 veces al día
	medID := createResource(t, baseURL, "/medications", userID, map[string]any{
		"name":      "Metformin",
		"frequency": "2 times daily",
		"dosage":    "500mg",
	})

	// 2) Tres familiares
	for _, name := range []string{"Ana", "Luis", "Marta"} {
		createResource(t, baseURL, "/family", userID, map[string]any{
			"name":         name,
			"relationship": "child",
			"phone":        "+34 600 000 000",
		})
	}

	// 3) Registrar toma => un aviso por familiar
	{
		st, body := doReq(t, baseURL, "POST", "/intake", userID, map[string]any{
			"medication_id": medID,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 record intake, got %d body=%s", st, string(body))
		}

		var resp struct {
			Record struct {
				ID     string `json:"id"`
				Date   string `json:"date"`
				Status string `json:"status"`
			} `json:"record"`
			Notified     int `json:"notified"`
			NotifyFailed int `json:"notify_failed"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Record.ID == "" || resp.Record.Date == "" {
			t.Fatalf("record intake: missing id/date body=%s", string(body))
		}
		if resp.Record.Status != "taken" {
			t.Fatalf("expected status taken, got %q", resp.Record.Status)
		}
		if resp.Notified != 3 || resp.NotifyFailed != 0 {
			t.Fatalf("expected 3 notified / 0 failed, got %d / %d", resp.Notified, resp.NotifyFailed)
		}
	}

	// 4) Los avisos quedan listados con el nombre del medicamento
	{
		st, body := doReq(t, baseURL, "GET", "/notifications", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list notifications, got %d body=%s", st, string(body))
		}
		var items []struct {
			MedicationName string `json:"medication_name"`
			Message        string `json:"message"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 3 {
			t.Fatalf("expected 3 notifications, got %d body=%s", len(items), string(body))
		}
		for _, n := range items {
			if n.MedicationName != "Metformin" {
				t.Fatalf("expected medication_name Metformin, got %q", n.MedicationName)
			}
		}
	}

	// 5) La toma aparece en el historial
	{
		st, body := doReq(t, baseURL, "GET", "/intake", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list intake, got %d body=%s", st, string(body))
		}
		var items []map[string]any
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 {
			t.Fatalf("expected 1 intake record, got %d", len(items))
		}
	}

	// 6) Adherencia: 2 dosis x 7 días = 14 esperadas, 1 tomada => 7%
	{
		st, body := doReq(t, baseURL, "GET", "/intake/stats?days=7", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 stats, got %d body=%s", st, string(body))
		}
		var stats struct {
			TotalExpected int `json:"total_expected"`
			TotalTaken    int `json:"total_taken"`
			AdherenceRate int `json:"adherence_rate"`
			Days          int `json:"days"`
		}
		_ = json.Unmarshal(body, &stats)
		if stats.TotalExpected != 14 || stats.TotalTaken != 1 || stats.AdherenceRate != 7 || stats.Days != 7 {
			t.Fatalf("unexpected stats %+v", stats)
		}
	}

	// 7) Medicamento inexistente => 404 y ningún aviso nuevo
	{
		st, _ := doReq(t, baseURL, "POST", "/intake", userID, map[string]any{
			"medication_id": "does-not-exist",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown medication, got %d", st)
		}

		_, body := doReq(t, baseURL, "GET", "/notifications", userID, nil)
		var items []map[string]any
		_ = json.Unmarshal(body, &items)
		if len(items) != 3 {
			t.Fatalf("expected still 3 notifications, got %d", len(items))
		}
	}

	// 8) Medicamento ajeno => 403
	{
		st, _ := doReq(t, baseURL, "POST", "/intake", "intruder", map[string]any{
			"medication_id": medID,
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 foreign medication, got %d", st)
		}
	}
}

func TestHTTP_RequiresUser(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok health, got %d body=%s", st, string(body))
	}

	for _, path := range []string{"/medications", "/family", "/intake", "/intake/stats", "/notifications"} {
		st, _ := doReq(t, ts.URL, "GET", path, "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s without user, got %d", path, st)
		}
	}
}

func TestHTTP_CreateMedication_Validation(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	// sin frecuencia => 400
	st, _ := doReq(t, ts.URL, "POST", "/medications", "user-1", map[string]any{
		"name": "Aspirin",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 missing frequency, got %d", st)
	}

	// campo desconocido => 400
	st, _ = doReq(t, ts.URL, "POST", "/medications", "user-1", map[string]any{
		"name":      "Aspirin",
		"frequency": "daily",
		"color":     "white",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 unknown field, got %d", st)
	}
}

func TestHTTP_BearerToken(t *testing.T) {
	verifier := jwtauth.NewVerifier("test-secret", "medguardian")
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: verifier}))
	defer ts.Close()

	token, err := verifier.Issue(auth.Claims{UserID: "user-1"}, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	// Con verifier el header de debug no alcanza
	st, _ := doReq(t, ts.URL, "GET", "/medications", "user-1", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 with debug header only, got %d", st)
	}

	req, _ := http.NewRequest("GET", ts.URL+"/medications", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with bearer token, got %d", res.StatusCode)
	}
}

func TestHTTP_SwaggerDoc(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 swagger doc, got %d", st)
	}
	var doc struct {
		Paths map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("swagger doc is not json: %v", err)
	}
	if _, ok := doc.Paths["/intake"]; !ok {
		t.Fatalf("swagger doc missing /intake")
	}
}

func createResource(t *testing.T, baseURL, path, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 POST %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("POST %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
