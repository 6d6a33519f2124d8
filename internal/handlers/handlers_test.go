package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func requestWithSession(sessionID string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: sessionID})
	return req
}

// Logouts and cookie lookups run on concurrent handler goroutines; the
// session map must survive that (run with -race).
func TestSessionMapConcurrentAccess(t *testing.T) {
	const sessions = 100

	sessionsMu.Lock()
	for i := 0; i < sessions; i++ {
		userSessions[fmt.Sprintf("session-%d", i)] = i
	}
	sessionsMu.Unlock()

	var wg sync.WaitGroup
	for i := 0; i < sessions; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("session-%d", i)

			getUserIDFromCookie(requestWithSession(id))

			w := httptest.NewRecorder()
			Logout(w, requestWithSession(id))
			if w.Code != http.StatusOK {
				t.Errorf("Logout status = %d, want %d", w.Code, http.StatusOK)
			}

			if _, exists := getUserIDFromCookie(requestWithSession(id)); exists {
				t.Errorf("session %s still present after logout", id)
			}
		}(i)
	}
	wg.Wait()

	sessionsMu.RLock()
	remaining := len(userSessions)
	sessionsMu.RUnlock()
	if remaining != 0 {
		t.Errorf("%d sessions left after all logouts, want 0", remaining)
	}
}
