package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docindex/internal/model"
	"docindex/internal/repository"
)

var columns = []string{
	"id", "title", "content", "file_type", "file_name", "file_size", "storage_id", "file_url",
	"category", "tags", "project", "team", "uploaded_by", "uploaded_at", "last_modified", "indexed_at",
}

func strPtr(s string) *string { return &s }

func sampleDoc() *model.Document {
	return &model.Document{
		ID:           "doc-1",
		Title:        "Q1 Campaign Plan",
		Content:      "launch in q1",
		FileType:     "md",
		FileName:     "plan.md",
		FileSize:     12,
		StorageID:    strPtr("documents/doc-1.md"),
		Category:     "campaign",
		Tags:         []string{"q1"},
		Team:         strPtr("growth"),
		UploadedBy:   "user-1",
		UploadedAt:   1000,
		LastModified: 1000,
		IndexedAt:    1000,
	}
}

func docRow(rows *sqlmock.Rows, d *model.Document, tags string) *sqlmock.Rows {
	var storageID, project, team any
	if d.StorageID != nil {
		storageID = *d.StorageID
	}
	if d.Project != nil {
		project = *d.Project
	}
	if d.Team != nil {
		team = *d.Team
	}
	return rows.AddRow(d.ID, d.Title, d.Content, d.FileType, d.FileName, d.FileSize, storageID, nil,
		d.Category, tags, project, team, d.UploadedBy, d.UploadedAt, d.LastModified, d.IndexedAt)
}

func newMock(t *testing.T) (*DocumentPostgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDocumentPostgres(db), mock
}

func TestDocumentPostgres_Create(t *testing.T) {
	repo, mock := newMock(t)
	ctx := context.Background()
	doc := sampleDoc()

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(doc.ID, doc.Title, doc.Content, doc.FileType, doc.FileName, doc.FileSize,
			"documents/doc-1.md", nil, doc.Category, `["q1"]`, nil, "growth",
			doc.UploadedBy, doc.UploadedAt, doc.LastModified, doc.IndexedAt).
		WillReturnRows(docRow(sqlmock.NewRows(columns), doc, `["q1"]`))

	result, err := repo.Create(ctx, doc)

	require.NoError(t, err)
	assert.Equal(t, doc.ID, result.ID)
	assert.Equal(t, []string{"q1"}, result.Tags)
	assert.Equal(t, "growth", *result.Team)
	assert.Nil(t, result.Project)
	assert.Nil(t, result.FileURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_Create_NilTagsStoredAsEmptyArray(t *testing.T) {
	repo, mock := newMock(t)
	doc := sampleDoc()
	doc.Tags = nil

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), `[]`, sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(docRow(sqlmock.NewRows(columns), doc, `[]`))

	result, err := repo.Create(context.Background(), doc)

	require.NoError(t, err)
	assert.NotNil(t, result.Tags)
	assert.Empty(t, result.Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_FindByID(t *testing.T) {
	repo, mock := newMock(t)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("doc-1").
			WillReturnRows(docRow(sqlmock.NewRows(columns), sampleDoc(), `["q1","Project Phoenix"]`))

		doc, err := repo.FindByID(ctx, "doc-1")

		require.NoError(t, err)
		assert.Equal(t, "doc-1", doc.ID)
		assert.Equal(t, []string{"q1", "Project Phoenix"}, doc.Tags)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		doc, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, doc)
	})

	t.Run("corrupt tags", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("doc-1").
			WillReturnRows(docRow(sqlmock.NewRows(columns), sampleDoc(), `{not json`))

		doc, err := repo.FindByID(ctx, "doc-1")

		assert.Error(t, err)
		assert.Nil(t, doc)
	})
}

func TestDocumentPostgres_All(t *testing.T) {
	repo, mock := newMock(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		first := sampleDoc()
		second := sampleDoc()
		second.ID = "doc-2"
		second.UploadedAt = 2000

		rows := sqlmock.NewRows(columns)
		docRow(rows, first, `["q1"]`)
		docRow(rows, second, `[]`)
		mock.ExpectQuery("SELECT (.+) FROM documents ORDER BY uploaded_at ASC, id ASC").
			WillReturnRows(rows)

		docs, err := repo.All(ctx)

		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "doc-1", docs[0].ID)
		assert.Equal(t, "doc-2", docs[1].ID)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents ORDER BY").
			WillReturnError(errors.New("connection refused"))

		docs, err := repo.All(ctx)

		assert.EqualError(t, err, "connection refused")
		assert.Nil(t, docs)
	})
}

func TestDocumentPostgres_Update(t *testing.T) {
	repo, mock := newMock(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		doc := sampleDoc()
		doc.Title = "Brand Guidelines"
		doc.Category = "branding"
		doc.Tags = []string{}
		doc.LastModified = 5000

		mock.ExpectQuery("UPDATE documents SET (.+) WHERE id = \\$1").
			WithArgs(doc.ID, doc.Title, doc.Content, doc.Category, `[]`, nil, "growth", int64(5000)).
			WillReturnRows(docRow(sqlmock.NewRows(columns), doc, `[]`))

		got, err := repo.Update(ctx, doc)

		require.NoError(t, err)
		assert.Equal(t, "branding", got.Category)
		assert.Equal(t, int64(5000), got.LastModified)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("UPDATE documents").WillReturnError(sql.ErrNoRows)

		got, err := repo.Update(ctx, sampleDoc())

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, got)
	})
}

func TestDocumentPostgres_Delete(t *testing.T) {
	repo, mock := newMock(t)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM documents WHERE id = ?").
		WithArgs("doc-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM documents WHERE id = ?").
		WithArgs("doc-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(ctx, "doc-1"))
	assert.NoError(t, repo.Delete(ctx, "doc-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_PingContext(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	repo := NewDocumentPostgres(db)

	mock.ExpectPing().WillReturnError(errors.New("down"))

	assert.EqualError(t, repo.PingContext(context.Background()), "down")
}
