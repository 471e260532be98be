package transport

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/cookiejar"
	neturl "net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// FileJar is a thin wrapper around the standard cookiejar.Jar that persists
// cookies to a JSON file on each update and reloads them on startup. It lets
// a CLI keep the backend's refresh cookie between invocations, so a user
// stays logged in without re-entering credentials. It is good enough for CLI
// and single-host services.
type FileJar struct {
	mu    sync.Mutex
	inner *cookiejar.Jar
	path  string
	index map[string]persistedCookie
}

type persistedCookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Domain   string    `json:"domain"`
	Path     string    `json:"path"`
	Expires  time.Time `json:"expires"`
	Secure   bool      `json:"secure"`
	HttpOnly bool      `json:"httpOnly"`
}

type cookieSnapshot struct {
	Cookies []persistedCookie `json:"cookies"`
}

// NewFileJar creates a cookie jar persisted at path.
func NewFileJar(path string) (*FileJar, error) {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	j := &FileJar{inner: inner, path: path, index: map[string]persistedCookie{}}
	if err := j.load(); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *FileJar) Cookies(u *neturl.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.inner.Cookies(u)
}

func (j *FileJar) SetCookies(u *neturl.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.inner.SetCookies(u, cookies)
	for _, c := range cookies {
		pc := normalize(u, c)
		key := pc.Domain + "|" + pc.Path + "|" + pc.Name
		if c.MaxAge < 0 || (!pc.Expires.IsZero() && time.Now().After(pc.Expires)) {
			delete(j.index, key)
			continue
		}
		j.index[key] = pc
	}
	_ = j.save()
}

// normalize fills in host-only domain and default path so a cookie can be
// rehydrated into a fresh jar later.
func normalize(u *neturl.URL, c *http.Cookie) persistedCookie {
	domain := strings.TrimPrefix(strings.TrimSpace(c.Domain), ".")
	if domain == "" {
		host := u.Host
		if h, _, err := net.SplitHostPort(host); err == nil && h != "" {
			host = h
		}
		domain = host
	}
	path := c.Path
	if strings.TrimSpace(path) == "" {
		path = "/"
	}
	expires := c.Expires
	if c.MaxAge > 0 {
		expires = time.Now().Add(time.Duration(c.MaxAge) * time.Second)
	}
	return persistedCookie{
		Name:     c.Name,
		Value:    c.Value,
		Domain:   domain,
		Path:     path,
		Expires:  expires,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
	}
}

func (j *FileJar) save() error {
	snap := cookieSnapshot{}
	for _, pc := range j.index {
		snap.Cookies = append(snap.Cookies, pc)
	}
	if err := os.MkdirAll(filepath.Dir(j.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	tmp := j.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, j.path)
}

func (j *FileJar) load() error {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	var snap cookieSnapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return err
	}
	now := time.Now()
	for _, pc := range snap.Cookies {
		if !pc.Expires.IsZero() && now.After(pc.Expires) {
			continue
		}
		scheme := "https"
		if !pc.Secure {
			scheme = "http"
		}
		u := &neturl.URL{Scheme: scheme, Host: pc.Domain, Path: pc.Path}
		j.inner.SetCookies(u, []*http.Cookie{{
			Name:     pc.Name,
			Value:    pc.Value,
			Domain:   pc.Domain,
			Path:     pc.Path,
			Expires:  pc.Expires,
			Secure:   pc.Secure,
			HttpOnly: pc.HttpOnly,
		}})
		key := pc.Domain + "|" + pc.Path + "|" + pc.Name
		j.index[key] = pc
	}
	return nil
}
