package panel

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionTTL = 30 * time.Minute

// SessionStore guarda os cookies de sessão do painel no Redis, para que
// execuções seguidas não precisem refazer o login.
type SessionStore struct {
	Client *redis.Client
}

type sessionCookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Path    string    `json:"path"`
	Domain  string    `json:"domain"`
	Expires time.Time `json:"expires"`
}

func sessionKey(email string) string {
	return "panel:sessao:" + email
}

func (s *SessionStore) Get(ctx context.Context, email string) ([]*http.Cookie, error) {
	val, err := s.Client.Get(ctx, sessionKey(email)).Result()
	if err != nil {
		return nil, nil
	}

	var stored []sessionCookie
	json.Unmarshal([]byte(val), &stored)

	cookies := make([]*http.Cookie, 0, len(stored))
	for _, sc := range stored {
		cookies = append(cookies, &http.Cookie{
			Name:    sc.Name,
			Value:   sc.Value,
			Path:    sc.Path,
			Domain:  sc.Domain,
			Expires: sc.Expires,
		})
	}
	return cookies, nil
}

func (s *SessionStore) Save(ctx context.Context, email string, cookies []*http.Cookie) error {
	stored := make([]sessionCookie, 0, len(cookies))
	for _, c := range cookies {
		stored = append(stored, sessionCookie{
			Name:    c.Name,
			Value:   c.Value,
			Path:    c.Path,
			Domain:  c.Domain,
			Expires: c.Expires,
		})
	}

	b, _ := json.Marshal(stored)

	return s.Client.Set(ctx, sessionKey(email), b, sessionTTL).Err()
}
