package repository

import (
	"context"

	"github.com/blanklearn/marketplace-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

const courseColumns = `id, title, subject, age_group, description, short_description, schedule,
	price, delivery_type, duration, teacher_id, teacher_name, teacher_avatar_url, teacher_bio_short,
	rating, reviews, learning_objectives`

// CourseRepository reads and seeds the courses table.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// ListCourses returns every course in catalog order.
func (r *CourseRepository) ListCourses(ctx context.Context) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+courseColumns+` FROM courses ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := []model.Course{}
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(
			&c.ID, &c.Title, &c.Subject, &c.AgeGroup, &c.Description, &c.ShortDescription, &c.Schedule,
			&c.Price, &c.Type, &c.Duration, &c.Teacher.ID, &c.Teacher.Name, &c.Teacher.AvatarURL, &c.Teacher.BioShort,
			&c.Rating, &c.Reviews, &c.LearningObjectives,
		); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// Upsert inserts or replaces a course. position fixes its listing order.
func (r *CourseRepository) Upsert(ctx context.Context, position int, c *model.Course) error {
	objectives := c.LearningObjectives
	if objectives == nil {
		objectives = []string{}
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO courses (`+courseColumns+`, position)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		 ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title, subject = EXCLUDED.subject, age_group = EXCLUDED.age_group,
			description = EXCLUDED.description, short_description = EXCLUDED.short_description,
			schedule = EXCLUDED.schedule, price = EXCLUDED.price, delivery_type = EXCLUDED.delivery_type,
			duration = EXCLUDED.duration, teacher_id = EXCLUDED.teacher_id, teacher_name = EXCLUDED.teacher_name,
			teacher_avatar_url = EXCLUDED.teacher_avatar_url, teacher_bio_short = EXCLUDED.teacher_bio_short,
			rating = EXCLUDED.rating, reviews = EXCLUDED.reviews,
			learning_objectives = EXCLUDED.learning_objectives, position = EXCLUDED.position,
			updated_at = NOW()`,
		c.ID, c.Title, c.Subject, c.AgeGroup, c.Description, c.ShortDescription, c.Schedule,
		c.Price, string(c.Type), c.Duration, c.Teacher.ID, c.Teacher.Name, c.Teacher.AvatarURL, c.Teacher.BioShort,
		c.Rating, c.Reviews, objectives, position,
	)
	return err
}
