package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	BackendURL = "http://localhost:8080"
	TestEmail  = "test@example.com"
	TestPass   = "Test123456"
)

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// generateTestFrame builds a synthetic 68-point landmark set with the
// requested eye and mouth openness. Enough geometry for the extractor;
// the rest of the face is filler.
func generateTestFrame(eyeOpenness, mouthOpenness float64) []point {
	points := make([]point, 68)
	for i := range points {
		points[i] = point{X: float64(i), Y: 100}
	}

	v := 2 * eyeOpenness
	for _, start := range []int{36, 42} {
		off := float64(start)
		points[start+0] = point{X: off + 0, Y: 0}
		points[start+1] = point{X: off + 1, Y: v}
		points[start+2] = point{X: off + 3, Y: v}
		points[start+3] = point{X: off + 4, Y: 0}
		points[start+4] = point{X: off + 3, Y: -v}
		points[start+5] = point{X: off + 1, Y: -v}
	}

	w := 3 * mouthOpenness
	points[60] = point{X: 0, Y: 50}
	points[61] = point{X: 1, Y: 50 + w}
	points[62] = point{X: 3, Y: 50 + w}
	points[63] = point{X: 5, Y: 50 + w}
	points[64] = point{X: 6, Y: 50}
	points[65] = point{X: 5, Y: 50 - w}
	points[66] = point{X: 3, Y: 50 - w}
	points[67] = point{X: 1, Y: 50 - w}

	return points
}

// Проверка состояния
func testHealth() error {
	fmt.Println("\n[TEST] Testing /api/health...")
	resp, err := http.Get(BackendURL + "/api/health")
	if err != nil {
		return fmt.Errorf("health check failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("✓ Health check: %s\n", string(body))
	return nil
}

// проверка регистрации
func testRegister() error {
	fmt.Println("\n[TEST] Testing /api/auth/register...")

	data := map[string]string{
		"email":    TestEmail,
		"username": "testuser",
		"password": TestPass,
	}

	jsonData, _ := json.Marshal(data)
	resp, err := http.Post(BackendURL+"/api/auth/register", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("registration failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusCreated {
		fmt.Printf("✓ Registration successful: %s\n", string(body))
		return nil
	} else if resp.StatusCode == http.StatusConflict {
		fmt.Printf("⚠ User already exists (this is OK)\n")
		return nil
	}

	return fmt.Errorf("registration failed: status %d, body: %s", resp.StatusCode, string(body))
}

// Проверка логина
func testLogin() (*http.Client, []*http.Cookie, error) {
	fmt.Println("\n[TEST] Testing /api/auth/login...")

	data := map[string]string{
		"email":    TestEmail,
		"password": TestPass,
	}

	jsonData, _ := json.Marshal(data)
	client := &http.Client{}
	req, _ := http.NewRequest("POST", BackendURL+"/api/auth/login", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("login failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("login failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	cookies := resp.Cookies()
	if len(cookies) == 0 {
		return nil, nil, fmt.Errorf("no session cookie received")
	}

	fmt.Printf("✓ Login successful, session cookie received\n")
	return client, cookies, nil
}

// Проверка цикла оценки
func testEvaluate(client *http.Client, cookies []*http.Cookie, landmarks []point) error {
	fmt.Println("\n[TEST] Testing /api/evaluate...")

	data := map[string]interface{}{
		"landmarks":       landmarks,
		"captured_at_ms":  time.Now().UnixMilli(),
		"sequence_number": 1,
		"affect": map[string]float64{
			"drowsy_confidence":   0.1,
			"stressed_confidence": 0.0,
		},
	}

	jsonData, _ := json.Marshal(data)
	req, _ := http.NewRequest("POST", BackendURL+"/api/evaluate", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("evaluate request failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("evaluate failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse response: %v", err)
	}

	fmt.Printf("✓ Evaluate successful!\n")
	fmt.Printf("  - Status: %v\n", result["status"])
	fmt.Printf("  - Score: %v\n", result["score"])
	if metrics, ok := result["metrics"].(map[string]interface{}); ok {
		fmt.Printf("  - Eye Openness: %v\n", metrics["eye_openness"])
		fmt.Printf("  - Mouth Openness: %v\n", metrics["mouth_openness"])
		fmt.Printf("  - Closure Fraction: %v\n", metrics["closure_fraction"])
	}
	if alert, ok := result["alert"].(map[string]interface{}); ok {
		fmt.Printf("  - Alert: %v (%v)\n", alert["severity"], alert["message"])
	}

	return nil
}

// Проверка создания сеанса
func testCreateSession(client *http.Client, cookies []*http.Cookie) (int, error) {
	fmt.Println("\n[TEST] Testing /api/sessions (POST)...")

	data := map[string]string{
		"notes": "Test session from automated test",
	}

	jsonData, _ := json.Marshal(data)
	req, _ := http.NewRequest("POST", BackendURL+"/api/sessions", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("create session failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		return 0, fmt.Errorf("create session failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var session map[string]interface{}
	if err := json.Unmarshal(body, &session); err != nil {
		return 0, fmt.Errorf("failed to parse session: %v", err)
	}

	sessionID := int(session["id"].(float64))
	fmt.Printf("✓ Session created: ID=%d\n", sessionID)
	return sessionID, nil
}

// Просмотр сеанса
func testGetSessions(client *http.Client, cookies []*http.Cookie) error {
	fmt.Println("\n[TEST] Testing /api/sessions (GET)...")

	req, _ := http.NewRequest("GET", BackendURL+"/api/sessions", nil)

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("get sessions failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get sessions failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var sessions []interface{}
	if err := json.Unmarshal(body, &sessions); err != nil {
		return fmt.Errorf("failed to parse sessions: %v", err)
	}

	fmt.Printf("✓ Retrieved %d sessions\n", len(sessions))
	return nil
}

// Сохранение события
func testSaveEvent(client *http.Client, cookies []*http.Cookie, sessionID int) error {
	fmt.Println("\n[TEST] Testing /api/events (POST)...")

	data := map[string]interface{}{
		"session_id":       sessionID,
		"score":            62.5,
		"severity":         "medium",
		"eye_openness":     0.18,
		"mouth_openness":   0.4,
		"closure_fraction": 0.55,
	}

	jsonData, _ := json.Marshal(data)
	req, _ := http.NewRequest("POST", BackendURL+"/api/events", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("save event failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("save event failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	fmt.Printf("✓ Event saved successfully\n")
	return nil
}

func main() {
	fmt.Println("=" + strings.Repeat("=", 60))
	fmt.Println("DRIVER MONITOR - Backend Testing Client")
	fmt.Println("=" + strings.Repeat("=", 60))

	fmt.Println("\n[INFO] Make sure the Go backend is running on", BackendURL)
	fmt.Println("\nPress Enter to start tests...")
	fmt.Scanln()

	fmt.Println("\n[INFO] Generating test landmarks...")
	landmarks := generateTestFrame(0.28, 0.3)
	fmt.Printf("✓ Generated %d landmarks\n", len(landmarks))

	tests := []struct {
		name string
		fn   func() error
	}{
		{"Health Check", testHealth},
		{"Registration", testRegister},
	}

	for _, test := range tests {
		if err := test.fn(); err != nil {
			log.Printf("❌ %s failed: %v", test.name, err)
			os.Exit(1)
		}
	}

	client, cookies, err := testLogin()
	if err != nil {
		log.Printf("❌ Login failed: %v", err)
		os.Exit(1)
	}

	if err := testEvaluate(client, cookies, landmarks); err != nil {
		log.Printf("❌ Evaluate test failed: %v", err)
		os.Exit(1)
	}

	sessionID, err := testCreateSession(client, cookies)
	if err != nil {
		log.Printf("⚠ Session creation failed: %v", err)
	} else {
		testGetSessions(client, cookies)
		testSaveEvent(client, cookies, sessionID)
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("✅ All tests completed successfully!")
	fmt.Println("=" + strings.Repeat("=", 60))
}
