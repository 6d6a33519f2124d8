package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Session struct {
	ID        int        `json:"id"`
	UserID    int        `json:"user_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Status    string     `json:"status"`
	Notes     string     `json:"notes,omitempty"`
}

// Event is one persisted drowsiness episode inside a monitoring session.
type Event struct {
	ID              int       `json:"id"`
	SessionID       int       `json:"session_id"`
	Score           float64   `json:"score"`
	Severity        string    `json:"severity,omitempty"`
	EyeOpenness     float64   `json:"eye_openness"`
	MouthOpenness   float64   `json:"mouth_openness"`
	ClosureFraction float64   `json:"closure_fraction"`
	Timestamp       time.Time `json:"timestamp"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateSessionRequest struct {
	Notes string `json:"notes,omitempty"`
}

type CreateEventRequest struct {
	SessionID       int     `json:"session_id"`
	Score           float64 `json:"score"`
	Severity        string  `json:"severity,omitempty"`
	EyeOpenness     float64 `json:"eye_openness"`
	MouthOpenness   float64 `json:"mouth_openness"`
	ClosureFraction float64 `json:"closure_fraction"`
}
