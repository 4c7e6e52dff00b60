package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	authorhandler "bookreview-backend/internal/domains/author/handler"
	authormodel "bookreview-backend/internal/domains/author/model"
	authorservice "bookreview-backend/internal/domains/author/service"
	bookhandler "bookreview-backend/internal/domains/book/handler"
	bookmodel "bookreview-backend/internal/domains/book/model"
	bookservice "bookreview-backend/internal/domains/book/service"
	reviewhandler "bookreview-backend/internal/domains/review/handler"
	reviewmodel "bookreview-backend/internal/domains/review/model"
	reviewservice "bookreview-backend/internal/domains/review/service"
	userhandler "bookreview-backend/internal/domains/user/handler"
	usermodel "bookreview-backend/internal/domains/user/model"
	userservice "bookreview-backend/internal/domains/user/service"

	"bookreview-backend/internal/config"
	"bookreview-backend/internal/infrastructure/database"
	"bookreview-backend/pkg/container"
	"bookreview-backend/pkg/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// memStore is an in-memory entity store shared by the four repository
// fakes. It mirrors the persistence contract the handlers rely on: assigned
// ids, unique isbn/username, resolving foreign keys, and cascade deletes.
type memStore struct {
	mu      sync.Mutex
	authors map[int64]authormodel.Author
	books   map[int64]bookmodel.Book
	reviews map[int64]reviewmodel.Review
	users   map[int64]usermodel.User
	nextID  int64
}

func newMemStore() *memStore {
	return &memStore{
		authors: make(map[int64]authormodel.Author),
		books:   make(map[int64]bookmodel.Book),
		reviews: make(map[int64]reviewmodel.Review),
		users:   make(map[int64]usermodel.User),
	}
}

func (s *memStore) nextIDLocked() int64 {
	s.nextID++
	return s.nextID
}

// --- author repository fake ---

type authorStore struct{ s *memStore }

func (st authorStore) Create(_ context.Context, a *authormodel.Author) (*authormodel.Author, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	created := *a
	created.ID = st.s.nextIDLocked()
	st.s.authors[created.ID] = created
	return &created, nil
}

func (st authorStore) GetByID(_ context.Context, id int64) (*authormodel.Author, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	a, ok := st.s.authors[id]
	if !ok {
		return nil, authormodel.ErrAuthorNotFound
	}
	return &a, nil
}

func (st authorStore) GetAll(_ context.Context) ([]authormodel.Author, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	out := []authormodel.Author{}
	for _, a := range st.s.authors {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (st authorStore) Update(_ context.Context, a *authormodel.Author) (*authormodel.Author, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	if _, ok := st.s.authors[a.ID]; !ok {
		return nil, authormodel.ErrAuthorNotFound
	}
	st.s.authors[a.ID] = *a
	updated := *a
	return &updated, nil
}

func (st authorStore) Delete(_ context.Context, id int64) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	if _, ok := st.s.authors[id]; !ok {
		return authormodel.ErrAuthorNotFound
	}
	delete(st.s.authors, id)
	// Cascade: books of this author, then reviews of those books.
	for bid, b := range st.s.books {
		if b.AuthorID == id {
			delete(st.s.books, bid)
			for rid, rv := range st.s.reviews {
				if rv.BookID == bid {
					delete(st.s.reviews, rid)
				}
			}
		}
	}
	return nil
}

func (st authorStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	_, ok := st.s.authors[id]
	return ok, nil
}

// --- book repository fake ---

type bookStore struct{ s *memStore }

func (st bookStore) annotateLocked(b bookmodel.Book) bookmodel.Book {
	b.AuthorName = st.s.authors[b.AuthorID].Name
	return b
}

func (st bookStore) Create(_ context.Context, b *bookmodel.Book) (*bookmodel.Book, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	if _, ok := st.s.authors[b.AuthorID]; !ok {
		return nil, bookmodel.ErrInvalidAuthor
	}
	for _, existing := range st.s.books {
		if existing.ISBN == b.ISBN {
			return nil, bookmodel.ErrDuplicateISBN
		}
	}
	created := *b
	created.ID = st.s.nextIDLocked()
	st.s.books[created.ID] = created
	annotated := st.annotateLocked(created)
	return &annotated, nil
}

func (st bookStore) GetByID(_ context.Context, id int64) (*bookmodel.Book, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	b, ok := st.s.books[id]
	if !ok {
		return nil, bookmodel.ErrBookNotFound
	}
	annotated := st.annotateLocked(b)
	return &annotated, nil
}

func (st bookStore) GetAll(_ context.Context) ([]bookmodel.Book, error) {
	return st.list(func(bookmodel.Book) bool { return true })
}

func (st bookStore) GetByAuthor(_ context.Context, authorID int64) ([]bookmodel.Book, error) {
	return st.list(func(b bookmodel.Book) bool { return b.AuthorID == authorID })
}

func (st bookStore) list(keep func(bookmodel.Book) bool) ([]bookmodel.Book, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	out := []bookmodel.Book{}
	for _, b := range st.s.books {
		if keep(b) {
			out = append(out, st.annotateLocked(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (st bookStore) Update(_ context.Context, b *bookmodel.Book) (*bookmodel.Book, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	if _, ok := st.s.books[b.ID]; !ok {
		return nil, bookmodel.ErrBookNotFound
	}
	if _, ok := st.s.authors[b.AuthorID]; !ok {
		return nil, bookmodel.ErrInvalidAuthor
	}
	for id, existing := range st.s.books {
		if existing.ISBN == b.ISBN && id != b.ID {
			return nil, bookmodel.ErrDuplicateISBN
		}
	}
	stored := *b
	stored.AuthorName = ""
	st.s.books[b.ID] = stored
	annotated := st.annotateLocked(stored)
	return &annotated, nil
}

func (st bookStore) Delete(_ context.Context, id int64) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	if _, ok := st.s.books[id]; !ok {
		return bookmodel.ErrBookNotFound
	}
	delete(st.s.books, id)
	for rid, rv := range st.s.reviews {
		if rv.BookID == id {
			delete(st.s.reviews, rid)
		}
	}
	return nil
}

func (st bookStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	_, ok := st.s.books[id]
	return ok, nil
}

// --- review repository fake ---

type reviewStore struct{ s *memStore }

func (st reviewStore) annotateLocked(rv reviewmodel.Review) reviewmodel.Review {
	rv.BookTitle = st.s.books[rv.BookID].Title
	rv.Username = st.s.users[rv.UserID].Username
	return rv
}

func (st reviewStore) Create(_ context.Context, rv *reviewmodel.Review) (*reviewmodel.Review, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	if _, ok := st.s.books[rv.BookID]; !ok {
		return nil, reviewmodel.ErrInvalidBook
	}
	if _, ok := st.s.users[rv.UserID]; !ok {
		return nil, reviewmodel.ErrInvalidUser
	}
	created := *rv
	created.ID = st.s.nextIDLocked()
	created.CreatedAt = time.Now()
	st.s.reviews[created.ID] = created
	annotated := st.annotateLocked(created)
	return &annotated, nil
}

func (st reviewStore) GetByID(_ context.Context, id int64) (*reviewmodel.Review, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	rv, ok := st.s.reviews[id]
	if !ok {
		return nil, reviewmodel.ErrReviewNotFound
	}
	annotated := st.annotateLocked(rv)
	return &annotated, nil
}

func (st reviewStore) GetAll(_ context.Context) ([]reviewmodel.Review, error) {
	return st.list(func(reviewmodel.Review) bool { return true })
}

func (st reviewStore) GetByBook(_ context.Context, bookID int64) ([]reviewmodel.Review, error) {
	return st.list(func(rv reviewmodel.Review) bool { return rv.BookID == bookID })
}

func (st reviewStore) list(keep func(reviewmodel.Review) bool) ([]reviewmodel.Review, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	out := []reviewmodel.Review{}
	for _, rv := range st.s.reviews {
		if keep(rv) {
			out = append(out, st.annotateLocked(rv))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (st reviewStore) Update(_ context.Context, rv *reviewmodel.Review) (*reviewmodel.Review, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	existing, ok := st.s.reviews[rv.ID]
	if !ok {
		return nil, reviewmodel.ErrReviewNotFound
	}
	if _, ok := st.s.books[rv.BookID]; !ok {
		return nil, reviewmodel.ErrInvalidBook
	}
	if _, ok := st.s.users[rv.UserID]; !ok {
		return nil, reviewmodel.ErrInvalidUser
	}
	stored := *rv
	stored.CreatedAt = existing.CreatedAt // immutable
	stored.BookTitle = ""
	stored.Username = ""
	st.s.reviews[rv.ID] = stored
	annotated := st.annotateLocked(stored)
	return &annotated, nil
}

func (st reviewStore) Delete(_ context.Context, id int64) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	if _, ok := st.s.reviews[id]; !ok {
		return reviewmodel.ErrReviewNotFound
	}
	delete(st.s.reviews, id)
	return nil
}

// --- user repository fake ---

type userStore struct{ s *memStore }

func (st userStore) Create(_ context.Context, u *usermodel.User) (*usermodel.User, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for _, existing := range st.s.users {
		if existing.Username == u.Username {
			return nil, usermodel.ErrDuplicateUsername
		}
	}
	created := *u
	created.ID = st.s.nextIDLocked()
	st.s.users[created.ID] = created
	return &created, nil
}

func (st userStore) GetByID(_ context.Context, id int64) (*usermodel.User, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	u, ok := st.s.users[id]
	if !ok {
		return nil, usermodel.ErrUserNotFound
	}
	return &u, nil
}

func (st userStore) GetByUsername(_ context.Context, username string) (*usermodel.User, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for _, u := range st.s.users {
		if u.Username == username {
			copied := u
			return &copied, nil
		}
	}
	return nil, usermodel.ErrUserNotFound
}

// --- cache fake ---

type noopCache struct{}

func (noopCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (noopCache) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}
func (noopCache) Delete(context.Context, ...string) error     { return nil }
func (noopCache) DeletePattern(context.Context, string) error { return nil }
func (noopCache) Ping(context.Context) error                  { return nil }

// --- test app wiring ---

type testApp struct {
	router *gin.Engine
	store  *memStore
	jwt    *jwt.Manager
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Environment = "test"
	cfg.App.Version = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTokenExpiry = time.Hour
	cfg.JWT.RefreshTokenExpiry = 24 * time.Hour

	store := newMemStore()
	manager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	authorRepo := authorStore{s: store}
	bookRepo := bookStore{s: store}
	reviewRepo := reviewStore{s: store}
	userRepo := userStore{s: store}

	authorSvc := authorservice.NewAuthorService(authorRepo)
	bookSvc := bookservice.NewBookService(bookRepo, authorRepo, reviewRepo)
	reviewSvc := reviewservice.NewReviewService(reviewRepo, bookRepo)
	userSvc := userservice.NewUserService(userRepo, manager)

	c := &container.Container{
		Config:        cfg,
		DB:            database.NewPostgresDB(&cfg.Database),
		Cache:         noopCache{},
		JWTManager:    manager,
		AuthorRepo:    authorRepo,
		BookRepo:      bookRepo,
		ReviewRepo:    reviewRepo,
		UserRepo:      userRepo,
		AuthorService: authorSvc,
		BookService:   bookSvc,
		ReviewService: reviewSvc,
		UserService:   userSvc,
		AuthorHandler: authorhandler.NewAuthorHandler(authorSvc),
		BookHandler:   bookhandler.NewBookHandler(bookSvc),
		ReviewHandler: reviewhandler.NewReviewHandler(reviewSvc),
		UserHandler:   userhandler.NewUserHandler(userSvc),
	}

	return &testApp{
		router: SetupRouter(c),
		store:  store,
		jwt:    manager,
	}
}

// seedUser inserts a user directly into the store and returns it. MinCost
// keeps the hash cheap in tests.
func (app *testApp) seedUser(t *testing.T, username, password string, staff, superuser bool) usermodel.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	created, err := userStore{s: app.store}.Create(context.Background(), &usermodel.User{
		Username:    username,
		Password:    string(hash),
		FirstName:   "Test",
		LastName:    "User",
		Email:       username + "@example.com",
		Gender:      usermodel.GenderOther,
		IsStaff:     staff,
		IsSuperuser: superuser,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return *created
}

func (app *testApp) tokenFor(t *testing.T, u usermodel.User) string {
	t.Helper()

	token, err := app.jwt.GenerateAccessToken(u.ID, u.Username, u.IsStaff, u.IsSuperuser)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// do performs a request against the test router. A nil body sends no
// payload; a non-nil one is marshaled to JSON.
func (app *testApp) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// Path builders take float64 because that is what ids decode to from JSON.

func authorPath(author float64) string {
	return fmt.Sprintf("/authors/%d/", int64(author))
}

func authorBooksPath(author float64) string {
	return fmt.Sprintf("/author/%d/books/", int64(author))
}

func bookPath(author, book float64) string {
	return fmt.Sprintf("/author/%d/books/%d/", int64(author), int64(book))
}

func reviewsPath(author, book float64) string {
	return fmt.Sprintf("/author/%d/book/%d/reviews", int64(author), int64(book))
}

func reviewPath(author, book, review float64) string {
	return fmt.Sprintf("/author/%d/book/%d/reviews/%d/", int64(author), int64(book), int64(review))
}

func (app *testApp) createAuthor(t *testing.T, token, name, bio string) float64 {
	t.Helper()

	rec := app.do(t, http.MethodPost, "/authors/", token, map[string]string{
		"name": name,
		"bio":  bio,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create author: got %d, body %s", rec.Code, rec.Body.String())
	}

	var body map[string]interface{}
	decodeJSON(t, rec, &body)
	return body["id"].(float64)
}

func (app *testApp) createBook(t *testing.T, token string, author float64, title, date, isbn string) float64 {
	t.Helper()

	rec := app.do(t, http.MethodPost, authorBooksPath(author), token, map[string]interface{}{
		"title":            title,
		"publication_date": date,
		"isbn":             isbn,
		"author":           author,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create book: got %d, body %s", rec.Code, rec.Body.String())
	}

	var body map[string]interface{}
	decodeJSON(t, rec, &body)
	return body["id"].(float64)
}

func (app *testApp) createReview(t *testing.T, token string, book, user float64, rating int, text string) float64 {
	t.Helper()

	rec := app.do(t, http.MethodPost, "/reviews/", token, map[string]interface{}{
		"book":        book,
		"user":        user,
		"rating":      rating,
		"review_text": text,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create review: got %d, body %s", rec.Code, rec.Body.String())
	}

	var body map[string]interface{}
	decodeJSON(t, rec, &body)
	return body["id"].(float64)
}
