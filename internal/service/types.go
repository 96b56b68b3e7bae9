package service

// Location is a pair of geographic coordinates.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Task represents a single task item. The server is authoritative; the client
// holds a transient copy per invocation and never caches it durably.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Location  *Location `json:"location,omitempty"`
	PhotoURI  string    `json:"photoUri"`
}

// NewTask is the write-only payload for task creation. Location is mandatory;
// PhotoURI falls back to DefaultPhotoURI when no photo was captured.
type NewTask struct {
	Title     string   `json:"title"`
	Completed bool     `json:"completed"`
	Location  Location `json:"location"`
	PhotoURI  string   `json:"photoUri"`
}

// DefaultPhotoURI is the placeholder photo submitted when none was captured.
const DefaultPhotoURI = "https://picsum.photos/300/200.jpg"

// Credentials are transient login/register inputs, never persisted.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
