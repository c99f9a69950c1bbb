// Command seed loads demo citizen accounts and hazard reports into a running
// OceanSync server through its public API, so both storage backends seed the
// same way. Re-running is safe: existing accounts are reused via login.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
)

type seedUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type seedReport struct {
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Location    string  `json:"location,omitempty"`
	UserID      string  `json:"userId"`
}

var demoUsers = []seedUser{
	{Username: "asha", Email: "asha@example.com", Password: "seaside123"},
	{Username: "ravi", Email: "ravi@example.com", Password: "seaside123"},
}

// Chennai-coast demo reports; descriptions exercise every triage priority.
var demoReports = []seedReport{
	{Description: "Emergency: swimmer caught in rip current", Latitude: 13.0500, Longitude: 80.2824, Location: "Marina Beach"},
	{Description: "Severe erosion after last night's storm", Latitude: 13.0012, Longitude: 80.2715, Location: "Besant Nagar"},
	{Description: "Moderate swell, small boats advised to stay in", Latitude: 13.1143, Longitude: 80.3000, Location: "Ennore"},
	{Description: "Oil sheen drifting toward the shore", Latitude: 12.9882, Longitude: 80.2610, Location: "Thiruvanmiyur"},
	{Description: "Plastic debris washed up along the tide line", Latitude: 13.0604, Longitude: 80.2829, Location: "Marina Beach"},
}

func main() {
	baseURL := getEnv("SERVER_URL", "http://localhost:8080")
	log.Printf("Seeding demo data into %s", baseURL)

	created, reports := 0, 0
	for i, u := range demoUsers {
		userID, isNew, err := ensureUser(baseURL, u)
		if err != nil {
			log.Fatalf("seed user %s: %v", u.Email, err)
		}
		if isNew {
			created++
		}

		// Spread the reports across the demo users.
		for j, r := range demoReports {
			if j%len(demoUsers) != i {
				continue
			}
			r.UserID = userID
			if err := postJSON(baseURL+"/api/hazard-reports", r, nil); err != nil {
				log.Fatalf("seed report %q: %v", r.Description, err)
			}
			reports++
		}
	}

	log.Printf("Seed completed: %d new users, %d reports submitted", created, reports)
}

// ensureUser registers the demo user, falling back to login when the email is
// already taken, and returns the user id.
func ensureUser(baseURL string, u seedUser) (string, bool, error) {
	var registered struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	err := postJSON(baseURL+"/api/auth/register", u, &registered)
	if err == nil {
		return registered.User.ID, true, nil
	}

	var loggedIn struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	login := map[string]string{"email": u.Email, "password": u.Password}
	if err := postJSON(baseURL+"/api/auth/login", login, &loggedIn); err != nil {
		return "", false, fmt.Errorf("register and login both failed: %w", err)
	}
	return loggedIn.User.ID, false, nil
}

func postJSON(url string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("post %s: status %d", url, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
