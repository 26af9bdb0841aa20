package csvfile

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/JRossell27/Job-tracker/internal/domain"
)

// fileNameChars collapses anything unsafe in a username to a single underscore
// when deriving the per-user file name. Login canonicalizes usernames to this
// set already; the rewrite here is a backstop for direct repository use.
var fileNameChars = regexp.MustCompile(`[^a-z0-9_-]+`)

type applicationRepo struct {
	dir string
	// mu serializes file access within this process. Concurrent processes on
	// the same directory still race (last full rewrite wins).
	mu sync.Mutex
}

func NewApplicationRepository(dir string) domain.ApplicationRepository {
	return &applicationRepo{dir: dir}
}

func (r *applicationRepo) DataFile(username string) string {
	name := fileNameChars.ReplaceAllString(strings.ToLower(username), "_")
	return fmt.Sprintf("applications_%s.csv", name)
}

func (r *applicationRepo) path(username string) string {
	return filepath.Join(r.dir, r.DataFile(username))
}

func (r *applicationRepo) Init(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.initLocked(username)
}

// initLocked creates the file with the canonical header when absent or empty,
// back-fills missing canonical columns with empty strings, assigns IDs to
// rows that predate the ID column, and persists the corrected file.
func (r *applicationRepo) initLocked(username string) error {
	path := r.path(username)

	t, err := readTable(path)
	if err != nil {
		return err
	}
	if t == nil {
		return writeTable(path, &table{header: slices.Clone(domain.Columns)})
	}

	for _, col := range domain.Columns {
		if slices.Contains(t.header, col) {
			continue
		}
		t.header = append(t.header, col)
		for i := range t.rows {
			t.rows[i] = append(t.rows[i], "")
		}
	}

	idIdx := slices.Index(t.header, domain.ColID)
	for i := range t.rows {
		if t.rows[i][idIdx] == "" {
			t.rows[i][idIdx] = uuid.NewString()
		}
	}

	return writeTable(path, t)
}

func (r *applicationRepo) GetAll(ctx context.Context, username string) ([]domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := readTable(r.path(username))
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}

	idx := t.colIndex()
	apps := make([]domain.Application, 0, len(t.rows))
	for _, row := range t.rows {
		apps = append(apps, fromRow(idx, row))
	}
	return apps, nil
}

func (r *applicationRepo) Append(ctx context.Context, username string, app *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Guarantees the file exists with the full canonical header.
	if err := r.initLocked(username); err != nil {
		return err
	}

	t, err := readTable(r.path(username))
	if err != nil {
		return err
	}

	if app.ID == "" {
		app.ID = uuid.NewString()
	}

	values := app.Fields()
	row := make([]string, len(t.header))
	for i, col := range t.header {
		row[i] = values[col]
	}
	t.rows = append(t.rows, row)

	return writeTable(r.path(username), t)
}

func (r *applicationRepo) Update(ctx context.Context, username string, id string, fields map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.path(username)
	t, err := readTable(path)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrRecordNotFound
	}

	idx := t.colIndex()
	idIdx, ok := idx[domain.ColID]
	if !ok {
		return domain.ErrRecordNotFound
	}

	for _, row := range t.rows {
		if row[idIdx] != id {
			continue
		}
		for col, val := range fields {
			if ci, ok := idx[col]; ok && ci < len(row) {
				row[ci] = val
			}
		}
		return writeTable(path, t)
	}
	return domain.ErrRecordNotFound
}

func (r *applicationRepo) Delete(ctx context.Context, username string, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.path(username)
	t, err := readTable(path)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrRecordNotFound
	}

	idIdx := slices.Index(t.header, domain.ColID)
	if idIdx < 0 {
		return domain.ErrRecordNotFound
	}

	for i, row := range t.rows {
		if row[idIdx] == id {
			t.rows = slices.Delete(t.rows, i, i+1)
			return writeTable(path, t)
		}
	}
	return domain.ErrRecordNotFound
}

// fromRow decodes one row using the file's own header; cells beyond the row's
// length or columns absent from the header read as empty.
func fromRow(idx map[string]int, row []string) domain.Application {
	get := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}
	return domain.Application{
		ID:              get(domain.ColID),
		Company:         get(domain.ColCompany),
		JobTitle:        get(domain.ColJobTitle),
		Location:        get(domain.ColLocation),
		SalaryEstimate:  get(domain.ColSalaryEstimate),
		JobPostingLink:  get(domain.ColJobPostingLink),
		ApplicationDate: get(domain.ColApplicationDate),
		Status:          get(domain.ColStatus),
		InterviewStage:  get(domain.ColInterviewStage),
		FollowUpDate:    get(domain.ColFollowUpDate),
		FollowUpSent:    get(domain.ColFollowUpSent),
		ResumeOptimized: get(domain.ColResumeOptimized),
		JobSource:       get(domain.ColJobSource),
		ContactName:     get(domain.ColContactName),
		Notes:           get(domain.ColNotes),
	}
}
