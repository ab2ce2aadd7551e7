package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SalmanuRidwan/Trivia-API/internal/domain/entity"
	apperrors "github.com/SalmanuRidwan/Trivia-API/internal/pkg/errors"
)

// sqlRecorder запоминает последний SQL, собранный GORM в режиме DryRun
type sqlRecorder struct {
	sql  string
	vars []interface{}
	db   *gorm.DB
}

// rendered возвращает SQL с подставленными значениями (как в логах GORM)
func (r *sqlRecorder) rendered() string {
	return r.db.Dialector.Explain(r.sql, r.vars...)
}

// newDryRunDB создает GORM поверх диалекта postgres без подключения к БД:
// запросы только собираются, но не выполняются
func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()

	db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{
		DSN: "host=localhost port=5432 user=trivia dbname=trivia sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true, // иначе Create/Delete попытаются открыть транзакцию
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	rec := &sqlRecorder{db: db}
	capture := func(tx *gorm.DB) {
		rec.sql = tx.Statement.SQL.String()
		rec.vars = tx.Statement.Vars
	}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_query", capture))
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:capture_create", capture))
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("test:capture_delete", capture))

	return db, rec
}

func TestQuestionRepo_Search(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewQuestionRepo(db)

	_, err := repo.Search(context.Background(), "100%")

	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "questions" WHERE question ILIKE $1 ORDER BY id`, rec.sql)
	assert.Equal(t, []interface{}{`%100\%%`}, rec.vars)
}

func TestQuestionRepo_Search_EscapesLikeWildcards(t *testing.T) {
	testCases := []struct {
		term    string
		pattern string
	}{
		{"Title", `%Title%`},
		{"", `%%`},
		{"a_b", `%a\_b%`},
		{`c:\dir`, `%c:\\dir%`},
	}

	for _, tc := range testCases {
		t.Run(tc.term, func(t *testing.T) {
			db, rec := newDryRunDB(t)

			_, err := NewQuestionRepo(db).Search(context.Background(), tc.term)

			require.NoError(t, err)
			assert.Equal(t, []interface{}{tc.pattern}, rec.vars)
		})
	}
}

func TestQuestionRepo_GetByCategory(t *testing.T) {
	db, rec := newDryRunDB(t)

	_, err := NewQuestionRepo(db).GetByCategory(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "questions" WHERE category = $1 ORDER BY id`, rec.sql)
	assert.Equal(t, []interface{}{uint(3)}, rec.vars)
}

func TestQuestionRepo_ListCandidates(t *testing.T) {
	testCases := []struct {
		name       string
		categoryID uint
		exclude    []uint
		wantSQL    string
		wantVars   []interface{}
	}{
		{
			name:     "любая категория без исключений",
			wantSQL:  `SELECT * FROM "questions" ORDER BY id`,
			wantVars: nil,
		},
		{
			name:     "любая категория с исключениями",
			exclude:  []uint{4, 7},
			wantSQL:  `SELECT * FROM "questions" WHERE id NOT IN ($1,$2) ORDER BY id`,
			wantVars: []interface{}{uint(4), uint(7)},
		},
		{
			name:       "категория с исключениями",
			categoryID: 2,
			exclude:    []uint{4, 7},
			wantSQL:    `SELECT * FROM "questions" WHERE category = $1 AND id NOT IN ($2,$3) ORDER BY id`,
			wantVars:   []interface{}{uint(2), uint(4), uint(7)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, rec := newDryRunDB(t)

			_, err := NewQuestionRepo(db).ListCandidates(context.Background(), tc.categoryID, tc.exclude)

			require.NoError(t, err)
			assert.Equal(t, tc.wantSQL, rec.sql)
			if tc.wantVars == nil {
				assert.Empty(t, rec.vars)
			} else {
				assert.Equal(t, tc.wantVars, rec.vars)
			}
		})
	}
}

func TestQuestionRepo_List_SecondPage(t *testing.T) {
	db, rec := newDryRunDB(t)

	_, err := NewQuestionRepo(db).List(context.Background(), 10, 10)

	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "questions" ORDER BY id LIMIT 10 OFFSET 10`, rec.rendered())
}

func TestQuestionRepo_Count(t *testing.T) {
	db, rec := newDryRunDB(t)

	_, err := NewQuestionRepo(db).Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, `SELECT count(*) FROM "questions"`, rec.sql)
}

func TestQuestionRepo_Create(t *testing.T) {
	db, rec := newDryRunDB(t)
	question := &entity.Question{Question: "Q", Answer: "A", Category: 2, Difficulty: 3}

	err := NewQuestionRepo(db).Create(context.Background(), question)

	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "questions" ("question","answer","category","difficulty") VALUES ($1,$2,$3,$4) RETURNING "id"`, rec.sql)
	assert.Equal(t, []interface{}{"Q", "A", uint(2), 3}, rec.vars)
}

func TestQuestionRepo_Delete_NoRowsIsNotFound(t *testing.T) {
	// В DryRun запрос не выполняется и RowsAffected равен 0,
	// как при удалении отсутствующего (или уже удалённого) вопроса
	db, rec := newDryRunDB(t)

	err := NewQuestionRepo(db).Delete(context.Background(), 1065)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, `DELETE FROM "questions" WHERE "questions"."id" = $1`, rec.sql)
	assert.Equal(t, []interface{}{uint(1065)}, rec.vars)
}

func TestCategoryRepo_List(t *testing.T) {
	db, rec := newDryRunDB(t)

	_, err := NewCategoryRepo(db).List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "categories" ORDER BY id`, rec.sql)
}
