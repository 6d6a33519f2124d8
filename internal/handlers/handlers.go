package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"DRIVER_MONITOR/go-backend/internal/database"
	"DRIVER_MONITOR/go-backend/internal/models"
)

// userSessions maps cookie value to user ID. Handlers run on concurrent
// goroutines, so every access goes through sessionsMu.
var (
	sessionsMu   sync.RWMutex
	userSessions = make(map[string]int)
)

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func generateSessionID(email string) string {
	return email + "-" + time.Now().Format("20060102150405") + "-" + time.Now().Format("000000000")
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) bool {
	return emailRegex.MatchString(email) && len(email) <= 255
}

func validatePassword(password string) bool {
	if len(password) < 8 || len(password) > 72 {
		return false
	}
	hasLetter := false
	hasNumber := false
	for _, char := range password {
		if (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') {
			hasLetter = true
		}
		if char >= '0' && char <= '9' {
			hasNumber = true
		}
	}
	return hasLetter && hasNumber
}

func validateUsername(username string) bool {
	if len(username) < 3 || len(username) > 30 {
		return false
	}
	usernameRegex := regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	return usernameRegex.MatchString(username)
}

func getUserIDFromCookie(r *http.Request) (int, bool) {
	cookie, err := r.Cookie("session_id")
	if err != nil {
		return 0, false
	}
	sessionsMu.RLock()
	userID, exists := userSessions[cookie.Value]
	sessionsMu.RUnlock()
	return userID, exists
}

func enableCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "http://localhost:5000")
	w.Header().Set("Access-Control-Allow-Credentials", "true")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Cookie")
	w.Header().Set("Content-Type", "application/json")
}

// requireDB rejects the request when the server runs without persistence.
func requireDB(w http.ResponseWriter) bool {
	if database.DB == nil {
		http.Error(w, "Database unavailable", http.StatusServiceUnavailable)
		return false
	}
	return true
}

func Register(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if !requireDB(w) {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" || req.Username == "" {
		http.Error(w, "All fields are required", http.StatusBadRequest)
		return
	}

	if !validateEmail(req.Email) {
		http.Error(w, "Invalid email format", http.StatusBadRequest)
		return
	}

	if !validatePassword(req.Password) {
		http.Error(w, "Password must be 8-72 characters with at least one letter and one number", http.StatusBadRequest)
		return
	}

	if !validateUsername(req.Username) {
		http.Error(w, "Username must be 3-30 characters, alphanumeric and underscore only", http.StatusBadRequest)
		return
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		log.Printf("Password hashing error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var userID int
	err = database.DB.QueryRow(
		"INSERT INTO users (email, username, password_hash) VALUES ($1, $2, $3) RETURNING id",
		req.Email, req.Username, passwordHash,
	).Scan(&userID)
	if err != nil {
		log.Printf("Registration failed: %v", err)
		errMsg := err.Error()
		if strings.Contains(errMsg, "users_username_key") {
			http.Error(w, "Username already taken", http.StatusConflict)
		} else if strings.Contains(errMsg, "users_email_key") {
			http.Error(w, "Email already registered", http.StatusConflict)
		} else {
			http.Error(w, "User already exists", http.StatusConflict)
		}
		return
	}

	user := models.User{
		ID:        userID,
		Email:     req.Email,
		Username:  req.Username,
		CreatedAt: time.Now(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
	log.Printf("User registered: %s", req.Email)
}

func Login(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if !requireDB(w) {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	if !validateEmail(req.Email) {
		http.Error(w, "Invalid email format", http.StatusBadRequest)
		return
	}

	var user models.User
	var storedHash string
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	err := database.DB.QueryRowContext(ctx,
		"SELECT id, email, username, password_hash, created_at FROM users WHERE email = $1",
		req.Email,
	).Scan(&user.ID, &user.Email, &user.Username, &storedHash, &user.CreatedAt)

	if err == sql.ErrNoRows {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	} else if err != nil {
		log.Printf("Login error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(req.Password))
	if err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	sessionsMu.Lock()
	for sessionKey, userID := range userSessions {
		if userID == user.ID {
			delete(userSessions, sessionKey)
		}
	}
	sessionsMu.Unlock()

	oldCookie, err := r.Cookie("session_id")
	if err == nil {
		sessionsMu.Lock()
		delete(userSessions, oldCookie.Value)
		sessionsMu.Unlock()
		http.SetCookie(w, &http.Cookie{
			Name:     "session_id",
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	sessionID := generateSessionID(req.Email)
	sessionsMu.Lock()
	userSessions[sessionID] = user.ID
	sessionsMu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    sessionID,
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
	log.Printf("User logged in: %s", req.Email)

}

func Logout(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	cookie, err := r.Cookie("session_id")
	if err == nil {
		sessionsMu.Lock()
		delete(userSessions, cookie.Value)
		sessionsMu.Unlock()
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Logged out"))
}

func GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if !requireDB(w) {
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, exists := getUserIDFromCookie(r)
	if !exists {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var user models.User
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	err := database.DB.QueryRowContext(ctx,
		"SELECT id, email, username, created_at FROM users WHERE id = $1",
		userID,
	).Scan(&user.ID, &user.Email, &user.Username, &user.CreatedAt)

	if err == sql.ErrNoRows {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Printf("GetCurrentUser error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

func CreateSession(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if !requireDB(w) {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, exists := getUserIDFromCookie(r)
	if !exists {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	var sessionID int
	err := database.DB.QueryRow(
		"INSERT INTO sessions (user_id, notes) VALUES ($1, $2) RETURNING id",
		userID, req.Notes,
	).Scan(&sessionID)
	if err != nil {
		log.Printf("CreateSession error: %v", err)
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	session := models.Session{
		ID:        sessionID,
		UserID:    userID,
		StartTime: time.Now(),
		Status:    "active",
		Notes:     req.Notes,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(session)
	log.Printf("Session created: ID=%d for user %d", sessionID, userID)
}

func GetSessions(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if !requireDB(w) {
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, exists := getUserIDFromCookie(r)
	if !exists {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	rows, err := database.DB.Query(
		"SELECT id, user_id, start_time, end_time, status, notes FROM sessions WHERE user_id = $1 ORDER BY start_time DESC",
		userID,
	)

	if err != nil {
		http.Error(w, "Failed to fetch sessions", http.StatusInternalServerError)
		return
	}

	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var s models.Session
		var endTime sql.NullTime
		err := rows.Scan(&s.ID, &s.UserID, &s.StartTime, &endTime, &s.Status, &s.Notes)
		if err != nil {
			continue
		}
		if endTime.Valid {
			s.EndTime = &endTime.Time
		}
		sessions = append(sessions, s)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessions)
}

func EndSession(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if !requireDB(w) {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, exists := getUserIDFromCookie(r)
	if !exists {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sessionIDStr := r.URL.Query().Get("id")
	sessionID, err := strconv.Atoi(sessionIDStr)
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	result, err := database.DB.Exec(
		"UPDATE sessions SET end_time = $1, status = 'completed' WHERE id = $2 AND user_id = $3",
		time.Now(), sessionID, userID,
	)
	if err != nil {
		log.Printf("Failed to end session: %v", err)
		http.Error(w, "Failed to end session", http.StatusInternalServerError)
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		http.Error(w, "Session not found or does not belong to user", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Session ended"))
	log.Printf("Session ended: %d", sessionID)
}

func DeleteSession(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if !requireDB(w) {
		return
	}
	if r.Method != http.MethodDelete && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, exists := getUserIDFromCookie(r)
	if !exists {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sessionIDStr := r.URL.Query().Get("id")
	sessionID, err := strconv.Atoi(sessionIDStr)
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	// Сначала проверяем, что сеанс принадлежит пользователю
	var sessionUserID int
	err = database.DB.QueryRow(
		"SELECT user_id FROM sessions WHERE id = $1",
		sessionID,
	).Scan(&sessionUserID)
	if err == sql.ErrNoRows {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Printf("Failed to verify session: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if sessionUserID != userID {
		http.Error(w, "Unauthorized: session does not belong to user", http.StatusForbidden)
		return
	}

	// Удаляем события сеанса
	_, err = database.DB.Exec("DELETE FROM events WHERE session_id = $1", sessionID)
	if err != nil {
		log.Printf("Failed to delete events: %v", err)
		// Продолжаем удаление сеанса даже если не удалось удалить события
	}

	// Удаляем сеанс
	result, err := database.DB.Exec("DELETE FROM sessions WHERE id = $1 AND user_id = $2", sessionID, userID)
	if err != nil {
		log.Printf("Failed to delete session: %v", err)
		http.Error(w, "Failed to delete session", http.StatusInternalServerError)
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Session deleted"))
	log.Printf("Session deleted: %d", sessionID)
}

func SaveEvent(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if !requireDB(w) {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, exists := getUserIDFromCookie(r)
	if !exists {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	var sessionUserID int
	err := database.DB.QueryRowContext(ctx,
		"SELECT user_id FROM sessions WHERE id = $1",
		req.SessionID,
	).Scan(&sessionUserID)
	if err == sql.ErrNoRows {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Printf("Failed to verify session: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if sessionUserID != userID {
		http.Error(w, "Unauthorized: session does not belong to user", http.StatusForbidden)
		return
	}

	var eventID int
	err = database.DB.QueryRow(
		"INSERT INTO events (session_id, score, severity, eye_openness, mouth_openness, closure_fraction) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id",
		req.SessionID, req.Score, req.Severity, req.EyeOpenness, req.MouthOpenness, req.ClosureFraction,
	).Scan(&eventID)

	if err != nil {
		log.Printf("Failed to save event: %v", err)
		http.Error(w, "Failed to save event", http.StatusInternalServerError)
		return
	}

	event := models.Event{
		ID:              eventID,
		SessionID:       req.SessionID,
		Score:           req.Score,
		Severity:        req.Severity,
		EyeOpenness:     req.EyeOpenness,
		MouthOpenness:   req.MouthOpenness,
		ClosureFraction: req.ClosureFraction,
		Timestamp:       time.Now(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(event)
}

func GetEvents(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if !requireDB(w) {
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, exists := getUserIDFromCookie(r)
	if !exists {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sessionIDStr := r.URL.Query().Get("session_id")
	sessionID, err := strconv.Atoi(sessionIDStr)
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	var sessionUserID int
	err = database.DB.QueryRowContext(ctx,
		"SELECT user_id FROM sessions WHERE id = $1",
		sessionID,
	).Scan(&sessionUserID)
	if err == sql.ErrNoRows {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Printf("Failed to verify session: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if sessionUserID != userID {
		http.Error(w, "Unauthorized: session does not belong to user", http.StatusForbidden)
		return
	}

	rows, err := database.DB.Query(
		"SELECT id, session_id, score, severity, eye_openness, mouth_openness, closure_fraction, timestamp FROM events WHERE session_id = $1 ORDER BY timestamp DESC",
		sessionID,
	)

	if err != nil {
		http.Error(w, "Failed to fetch events", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		err := rows.Scan(&e.ID, &e.SessionID, &e.Score, &e.Severity, &e.EyeOpenness, &e.MouthOpenness, &e.ClosureFraction, &e.Timestamp)
		if err != nil {
			continue
		}
		events = append(events, e)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(events)
}
