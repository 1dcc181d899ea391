//+build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	m "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Chirag30Sharma/AgriScan-Backend/internal/entities"
	"github.com/Chirag30Sharma/AgriScan-Backend/internal/storage"
)

var (
	db  *sql.DB
	ctx = context.Background()
	s   storage.Storage
)

func TestMain(m *testing.M) {
	shutdown := setup()

	s = New(db)

	code := m.Run()
	shutdown()
	os.Exit(code)
}

func setup() func() {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:12",
		Env:          map[string]string{"POSTGRES_PASSWORD": "root"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
	})
	if err != nil {
		logrus.WithError(err).Fatalf("failed to create container")
	}

	if err := c.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to start container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}

	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=postgres password=root sslmode=disable", host, port.Int())

	db, err = sql.Open("postgres", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open connection")
	}

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	shutdownFn := func() {
		if c != nil {
			c.Terminate(ctx)
		}
	}

	migrate("postgres", "root", host, "postgres", port.Int())

	return shutdownFn
}

func migrate(username, password, hostname, dbname string, port int) {
	_, currFile, _, ok := runtime.Caller(0)
	if !ok {
		logrus.Fatal("failed to get current file location")
	}

	migrations := filepath.Join(currFile, "../../../../scripts/migrations/postgres/")

	migrator, err := m.New(
		fmt.Sprintf("file://%s", migrations),
		fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			username, password, hostname, port, dbname),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}
}

func createChat(t *testing.T, title string) int64 {
	t.Helper()

	var id int64
	require.NoError(t, sqlx.GetContext(ctx, sqlx.NewDb(db, "postgres"), &id, `
		INSERT INTO farmer_chat(first_name, last_name, phone_number, title, description)
		VALUES('A', 'B', '555', $1, 'd') RETURNING chat_id
	`, title))

	return id
}

func TestPg_CreateProfile_GetProfile(t *testing.T) {
	require.NoError(t, s.CreateProfile(ctx, &storage.CreateProfileParams{
		FirstName:   "A",
		LastName:    "B",
		PhoneNumber: "100",
		Password:    "x",
	}))

	p, err := s.GetProfile(ctx, "100")
	require.NoError(t, err)

	assert.Equal(t, "A", p.FirstName)
	assert.Equal(t, "B", p.LastName)
	assert.Equal(t, "100", p.PhoneNumber)
	assert.Equal(t, "x", p.Password)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestPg_GetProfile_NotFound(t *testing.T) {
	_, err := s.GetProfile(ctx, "does-not-exist")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

// phone_number is not unique, the earliest registration wins on lookup
func TestPg_CreateProfile_Duplicate(t *testing.T) {
	require.NoError(t, s.CreateProfile(ctx, &storage.CreateProfileParams{
		FirstName: "first", LastName: "l", PhoneNumber: "200", Password: "x",
	}))
	require.NoError(t, s.CreateProfile(ctx, &storage.CreateProfileParams{
		FirstName: "second", LastName: "l", PhoneNumber: "200", Password: "y",
	}))

	var count int
	require.NoError(t, sqlx.GetContext(ctx, sqlx.NewDb(db, "postgres"), &count,
		`SELECT COUNT(*) FROM farmer_profile WHERE phone_number='200'`))
	assert.Equal(t, 2, count)

	p, err := s.GetProfile(ctx, "200")
	require.NoError(t, err)
	assert.Equal(t, "first", p.FirstName)
}

func TestPg_SetPassword(t *testing.T) {
	require.NoError(t, s.CreateProfile(ctx, &storage.CreateProfileParams{
		FirstName: "A", LastName: "B", PhoneNumber: "300", Password: "old",
	}))

	require.NoError(t, s.SetPassword(ctx, "300", "new"))

	p, err := s.GetProfile(ctx, "300")
	require.NoError(t, err)
	assert.Equal(t, "new", p.Password)
}

func TestPg_SetPassword_NotFound(t *testing.T) {
	err := s.SetPassword(ctx, "does-not-exist", "new")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_CreateChat_ListChats(t *testing.T) {
	require.NoError(t, s.CreateChat(ctx, &storage.CreateChatParams{
		FirstName:   "A",
		LastName:    "B",
		PhoneNumber: "555",
		Title:       "blight on tomatoes",
		Description: "leaves turning brown",
	}))

	chats, err := s.ListChats(ctx, 1000)
	require.NoError(t, err)

	var created *entities.Chat
	for _, v := range chats {
		if v.Title == "blight on tomatoes" {
			created = v
		}
	}

	require.NotNil(t, created)
	assert.EqualValues(t, 0, created.Liked)
	assert.EqualValues(t, 0, created.Dislike)
}

func TestPg_ListChats_Limit(t *testing.T) {
	for i := 0; i < 3; i++ {
		createChat(t, fmt.Sprintf("limit-%d", i))
	}

	chats, err := s.ListChats(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, chats, 2)
}

func TestPg_AddReaction(t *testing.T) {
	id := createChat(t, "reactions")

	require.NoError(t, s.AddReaction(ctx, id, storage.LikeReaction))
	require.NoError(t, s.AddReaction(ctx, id, storage.LikeReaction))
	require.NoError(t, s.AddReaction(ctx, id, storage.DislikeReaction))

	var liked, dislike uint32
	row := db.QueryRowContext(ctx, `SELECT liked, dislike FROM farmer_chat WHERE chat_id=$1`, id)
	require.NoError(t, row.Scan(&liked, &dislike))

	assert.EqualValues(t, 2, liked)
	assert.EqualValues(t, 1, dislike)
}

func TestPg_AddReaction_NotFound(t *testing.T) {
	err := s.AddReaction(ctx, 1<<60, storage.LikeReaction)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

// regression for the lost-update hazard: the increment is atomic in the
// database, so N concurrent likes must produce exactly N increments
func TestPg_AddReaction_Concurrent(t *testing.T) {
	id := createChat(t, "concurrent reactions")

	const n = 50

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, s.AddReaction(ctx, id, storage.LikeReaction))
		}()
	}
	wg.Wait()

	var liked uint32
	row := db.QueryRowContext(ctx, `SELECT liked FROM farmer_chat WHERE chat_id=$1`, id)
	require.NoError(t, row.Scan(&liked))

	assert.EqualValues(t, n, liked)
}

func TestPg_CreateProblemReport(t *testing.T) {
	require.NoError(t, s.CreateProblemReport(ctx, &storage.CreateProblemReportParams{
		Photo:       "photo-bytes",
		Description: "rust on wheat",
		ImagePath:   "images/1.jpg",
		FarmerID:    "555",
		FarmerName:  " Lee",
	}))

	var name string
	row := db.QueryRowContext(ctx, `SELECT farmer_name FROM farmer_problem WHERE farmer_id='555'`)
	require.NoError(t, row.Scan(&name))

	assert.Equal(t, " Lee", name)
}

func TestPg_ListResponses(t *testing.T) {
	for _, v := range []string{"first advice", "second advice"} {
		_, err := db.ExecContext(ctx,
			`INSERT INTO farmer_response(phone_number, response) VALUES('400', $1)`, v)
		require.NoError(t, err)
	}

	rr, err := s.ListResponses(ctx, "400")
	require.NoError(t, err)
	require.Len(t, rr, 2)

	got := []string{rr[0].Response, rr[1].Response}
	assert.ElementsMatch(t, []string{"first advice", "second advice"}, got)

	rr, err = s.ListResponses(ctx, "401")
	require.NoError(t, err)
	assert.Empty(t, rr)
}
