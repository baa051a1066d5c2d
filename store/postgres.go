package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Dozy-jeff/sellable/models"
)

// Postgres implements every store interface over a pgx pool.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

const queryTimeout = 5 * time.Second

func (s *Postgres) CreateUser(ctx context.Context, name, email, passwordHash, role string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	var id int64
	err := s.pool.QueryRow(ctx, `INSERT INTO users(name,email,password_hash,role)
VALUES($1,$2,$3,$4)
ON CONFLICT (email) DO UPDATE SET name=EXCLUDED.name, password_hash=EXCLUDED.password_hash
RETURNING id`, name, email, passwordHash, role).Scan(&id)
	return id, err
}

func (s *Postgres) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id,name,email,password_hash,role,created_at FROM users WHERE email=$1`, email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Postgres) UserByID(ctx context.Context, id int64) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id,name,email,password_hash,role,created_at FROM users WHERE id=$1`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// getDoc reads a single JSONB payload row into out.
func (s *Postgres) getDoc(ctx context.Context, table string, userID int64, out any) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT payload FROM `+table+` WHERE user_id=$1`, userID,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, out)
}

func (s *Postgres) putDoc(ctx context.Context, table string, userID int64, doc any) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `INSERT INTO `+table+`(user_id, payload) VALUES($1,$2::jsonb)
ON CONFLICT (user_id) DO UPDATE SET payload=EXCLUDED.payload, updated_at=now()`, userID, string(payload))
	return err
}

func (s *Postgres) GetIntake(ctx context.Context, userID int64) (*models.SellerIntake, error) {
	var intake models.SellerIntake
	if err := s.getDoc(ctx, "seller_intakes", userID, &intake); err != nil {
		return nil, err
	}
	return &intake, nil
}

func (s *Postgres) PutIntake(ctx context.Context, userID int64, intake models.SellerIntake) error {
	return s.putDoc(ctx, "seller_intakes", userID, intake)
}

func (s *Postgres) GetReadiness(ctx context.Context, userID int64) (*models.ReadinessResult, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	var (
		r         models.ReadinessResult
		checklist []byte
		nextSteps []byte
	)
	err := s.pool.QueryRow(ctx,
		`SELECT readiness, checklist, next_steps FROM readiness_results WHERE user_id=$1`, userID,
	).Scan(&r.Readiness, &checklist, &nextSteps)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(checklist, &r.ChecklistItems); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(nextSteps, &r.NextSteps); err != nil {
		return nil, err
	}
	for _, it := range r.ChecklistItems {
		r.Checklist = append(r.Checklist, it.Text)
	}
	return &r, nil
}

func (s *Postgres) PutReadiness(ctx context.Context, userID int64, result models.ReadinessResult) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	checklist, err := json.Marshal(result.ChecklistItems)
	if err != nil {
		return err
	}
	nextSteps, err := json.Marshal(result.NextSteps)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `INSERT INTO readiness_results(user_id, readiness, checklist, next_steps)
VALUES($1,$2,$3::jsonb,$4::jsonb)
ON CONFLICT (user_id) DO UPDATE SET readiness=EXCLUDED.readiness, checklist=EXCLUDED.checklist,
next_steps=EXCLUDED.next_steps, updated_at=now()`, userID, result.Readiness, string(checklist), string(nextSteps))
	return err
}

func (s *Postgres) GetProgress(ctx context.Context, userID int64) (*models.StepProgress, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	var (
		p        models.StepProgress
		articles []byte
		tasks    []byte
	)
	err := s.pool.QueryRow(ctx,
		`SELECT current_step, completed_articles, completed_tasks, overall_progress
FROM step_progress WHERE user_id=$1`, userID,
	).Scan(&p.CurrentStep, &articles, &tasks, &p.OverallProgress)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(articles, &p.CompletedArticles); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tasks, &p.CompletedTasks); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Postgres) PutProgress(ctx context.Context, userID int64, p models.StepProgress) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	articles, err := json.Marshal(p.CompletedArticles)
	if err != nil {
		return err
	}
	tasks, err := json.Marshal(p.CompletedTasks)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `INSERT INTO step_progress(user_id, current_step, completed_articles, completed_tasks, overall_progress)
VALUES($1,$2,$3::jsonb,$4::jsonb,$5)
ON CONFLICT (user_id) DO UPDATE SET current_step=EXCLUDED.current_step,
completed_articles=EXCLUDED.completed_articles, completed_tasks=EXCLUDED.completed_tasks,
overall_progress=EXCLUDED.overall_progress, updated_at=now()`,
		userID, p.CurrentStep, string(articles), string(tasks), p.OverallProgress)
	return err
}

func (s *Postgres) GetModel(ctx context.Context, userID int64) (*models.FinancialModel, error) {
	var m models.FinancialModel
	if err := s.getDoc(ctx, "financial_models", userID, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Postgres) PutModel(ctx context.Context, userID int64, m models.FinancialModel) error {
	return s.putDoc(ctx, "financial_models", userID, m)
}

func (s *Postgres) DeleteModel(ctx context.Context, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	_, err := s.pool.Exec(ctx, `DELETE FROM financial_models WHERE user_id=$1`, userID)
	return err
}

func (s *Postgres) PublishListing(ctx context.Context, l models.Listing) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	systems, err := json.Marshal(l.Systems)
	if err != nil {
		return err
	}
	highlights, err := json.Marshal(l.Highlights)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `INSERT INTO listings(id, user_id, name, location, industry, model,
revenue_ttm, ebitda_ttm, employees, years_operating, systems, readiness, highlights)
VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11::jsonb,$12,$13::jsonb)
ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, location=EXCLUDED.location,
industry=EXCLUDED.industry, model=EXCLUDED.model, revenue_ttm=EXCLUDED.revenue_ttm,
ebitda_ttm=EXCLUDED.ebitda_ttm, employees=EXCLUDED.employees,
years_operating=EXCLUDED.years_operating, systems=EXCLUDED.systems,
readiness=EXCLUDED.readiness, highlights=EXCLUDED.highlights`,
		l.ID, l.UserID, l.Name, l.Location, l.Industry, l.Model,
		l.RevenueTTM, l.EbitdaTTM, l.Employees, l.YearsOperating,
		string(systems), l.Readiness, string(highlights))
	return err
}

func (s *Postgres) Listings(ctx context.Context) ([]models.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	rows, err := s.pool.Query(ctx, `SELECT id, user_id, name, location, industry, model,
revenue_ttm::float8, ebitda_ttm::float8, employees, years_operating, systems, readiness, highlights, published_at
FROM listings ORDER BY published_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []models.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *Postgres) ListingByID(ctx context.Context, id string) (*models.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	row := s.pool.QueryRow(ctx, `SELECT id, user_id, name, location, industry, model,
revenue_ttm::float8, ebitda_ttm::float8, employees, years_operating, systems, readiness, highlights, published_at
FROM listings WHERE id=$1`, id)
	l, err := scanListing(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func scanListing(row pgx.Row) (models.Listing, error) {
	var (
		l          models.Listing
		systems    []byte
		highlights []byte
	)
	err := row.Scan(&l.ID, &l.UserID, &l.Name, &l.Location, &l.Industry, &l.Model,
		&l.RevenueTTM, &l.EbitdaTTM, &l.Employees, &l.YearsOperating,
		&systems, &l.Readiness, &highlights, &l.PublishedAt)
	if err != nil {
		return l, err
	}
	if err := json.Unmarshal(systems, &l.Systems); err != nil {
		return l, err
	}
	if err := json.Unmarshal(highlights, &l.Highlights); err != nil {
		return l, err
	}
	return l, nil
}
