package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/licxiahhht2698-ui/keshitongji/internal/model"
)

// LessonRecord 持久化的课时记录
type LessonRecord struct {
	ID      string  `json:"id"`
	Teacher string  `json:"teacher"`
	Month   string  `json:"month,omitempty"`
	Course  string  `json:"course"`
	Hours   float64 `json:"hours"`
	Source  string  `json:"source"`
	Date    string  `json:"date,omitempty"`
}

// InsertRecord 写入一条课时记录并登记教师
func (s *Store) InsertRecord(rec LessonRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Source == "" {
		rec.Source = "manual"
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("开启事务失败: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		`INSERT OR IGNORE INTO teachers (name) VALUES (?)`, rec.Teacher,
	); err != nil {
		return "", fmt.Errorf("登记教师失败: %w", err)
	}
	if _, err := tx.Exec(
		`INSERT INTO records (id, teacher_name, month, course, hours, source, record_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Teacher, rec.Month, rec.Course, rec.Hours, rec.Source, rec.Date,
	); err != nil {
		return "", fmt.Errorf("写入课时记录失败: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("提交事务失败: %w", err)
	}
	return rec.ID, nil
}

// SaveRunRecords 批量保存一次统计运行的记录
func (s *Store) SaveRunRecords(runID, sheetName, kind string, records []model.ParsedRecord, skipped int, teacherCount int, totalHours float64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("开启事务失败: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		`INSERT INTO stat_runs (id, sheet_name, kind, record_count, teacher_count, total_hours, skipped)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, sheetName, kind, len(records), teacherCount, totalHours, skipped,
	); err != nil {
		return fmt.Errorf("写入统计运行失败: %w", err)
	}

	for _, rec := range records {
		if _, err := tx.Exec(
			`INSERT OR IGNORE INTO teachers (name) VALUES (?)`, rec.Teacher,
		); err != nil {
			return fmt.Errorf("登记教师失败: %w", err)
		}
		if _, err := tx.Exec(
			`INSERT INTO records (id, teacher_name, course, hours, source, record_date)
			 VALUES (?, ?, ?, ?, 'import', ?)`,
			uuid.New().String(), rec.Teacher, rec.Category, rec.Hours, rec.Date,
		); err != nil {
			return fmt.Errorf("写入课时记录失败: %w", err)
		}
	}

	return tx.Commit()
}

// ListRecords 按写入时间倒序列出课时记录；month 为空时不过滤
func (s *Store) ListRecords(month string) ([]LessonRecord, error) {
	query := `SELECT id, teacher_name, COALESCE(month, ''), COALESCE(course, ''), hours, source, COALESCE(record_date, '')
	          FROM records`
	args := []any{}
	if month != "" {
		query += ` WHERE month = ?`
		args = append(args, month)
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("查询课时记录失败: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []LessonRecord{}
	for rows.Next() {
		var rec LessonRecord
		if err := rows.Scan(&rec.ID, &rec.Teacher, &rec.Month, &rec.Course, &rec.Hours, &rec.Source, &rec.Date); err != nil {
			return nil, fmt.Errorf("读取课时记录失败: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// CountRecords 记录总数
func (s *Store) CountRecords() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("统计记录数失败: %w", err)
	}
	return n, nil
}

// ListTeachers 教师名单（登记表 ∪ 记录表），按名称排序
func (s *Store) ListTeachers() ([]string, error) {
	rows, err := s.db.Query(`
		SELECT name FROM teachers
		UNION
		SELECT DISTINCT teacher_name FROM records
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("查询教师名单失败: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("读取教师名单失败: %w", err)
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// RecordsAsParsed 将持久化记录转为解析记录，供汇总复用同一聚合器
func RecordsAsParsed(records []LessonRecord) []model.ParsedRecord {
	out := make([]model.ParsedRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, model.ParsedRecord{
			Teacher:  rec.Teacher,
			Category: rec.Course,
			Hours:    rec.Hours,
			Date:     rec.Date,
		})
	}
	return out
}
