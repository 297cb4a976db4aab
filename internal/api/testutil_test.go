package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"taskboard/internal/config"
	"taskboard/internal/entity"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// fakeRepo is an in-memory Repository backing the handler tests.
type fakeRepo struct {
	mu         sync.Mutex
	users      map[uint]entity.DbUser
	tasks      map[uint]entity.DbTask
	nextUserID uint
	nextTaskID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users: make(map[uint]entity.DbUser),
		tasks: make(map[uint]entity.DbTask),
	}
}

func (f *fakeRepo) CreateUser(_ context.Context, user *entity.DbUser) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextUserID++
	user.ID = f.nextUserID
	f.users[user.ID] = *user
	return nil
}

func (f *fakeRepo) GetUserByUsername(_ context.Context, username string) (*entity.DbUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetUserByID(_ context.Context, id uint) (*entity.DbUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	user := u
	return &user, nil
}

func (f *fakeRepo) ListUsers(_ context.Context) ([]entity.DbUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]entity.DbUser, 0, len(f.users))
	for id := uint(1); id <= f.nextUserID; id++ {
		if u, ok := f.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (f *fakeRepo) DeleteUser(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateTask(_ context.Context, task *entity.DbTask) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextTaskID++
	task.ID = f.nextTaskID
	f.tasks[task.ID] = *task
	return nil
}

func (f *fakeRepo) UpdateTask(_ context.Context, id uint, updates map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if name, ok := updates["name_task"].(string); ok {
		task.NameTask = name
	}
	if status, ok := updates["status_task"].(string); ok {
		task.StatusTask = status
	}
	f.tasks[id] = task
	return nil
}

func (f *fakeRepo) GetTaskByID(_ context.Context, id uint) (*entity.DbTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	task := t
	return &task, nil
}

func (f *fakeRepo) ListTasks(_ context.Context) ([]entity.DbTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tasks := make([]entity.DbTask, 0, len(f.tasks))
	for id := uint(1); id <= f.nextTaskID; id++ {
		if t, ok := f.tasks[id]; ok {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (f *fakeRepo) ListTasksByStatus(_ context.Context, status string) ([]entity.DbTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var tasks []entity.DbTask
	for id := uint(1); id <= f.nextTaskID; id++ {
		if t, ok := f.tasks[id]; ok && t.StatusTask == status {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (f *fakeRepo) DeleteTask(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tasks[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.tasks, id)
	return nil
}

func (f *fakeRepo) taskCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tasks)
}

func testConfig() config.Config {
	return config.Config{
		BuiltinAdminPassword:      "admin",
		BuiltinDirectorPassword:   "director",
		BuiltinEconomistPassword:  "economist",
		BuiltinAccountantPassword: "accountant",
		JWTSecret:                 "test-secret",
		JWTIssuer:                 "test",
		JWTExpirationMinutes:      60,
	}
}

func newTestServer(t *testing.T, repo *fakeRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler, err := NewHTTPHandler(testConfig(), repo)
	if err != nil {
		t.Fatalf("unexpected error building handler: %v", err)
	}

	r := gin.New()
	handler.RegisterRoutes(r)
	return r
}

func doForm(r *gin.Engine, method, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// loginAs performs the form login and returns the session cookies.
func loginAs(t *testing.T, r *gin.Engine, username, password string) []*http.Cookie {
	t.Helper()
	w := doForm(r, http.MethodPost, "/login", url.Values{
		"username": {username},
		"password": {password},
	}, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("expected login redirect, got %d", w.Code)
	}
	location := w.Header().Get("Location")
	if location == "/login?error" {
		t.Fatalf("login as %s failed", username)
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}
	return cookies
}
