package database

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"github.com/hrsight/employees-api/internal/temporal"
)

type DataSeeder struct {
	db  *sql.DB
	rng *rand.Rand
}

func NewDataSeeder(db *sql.DB) *DataSeeder {
	return &DataSeeder{db: db, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

var (
	firstNames = []string{"Georgi", "Bezalel", "Parto", "Chirstian", "Kyoichi", "Anneke", "Tzvetan", "Saniya", "Sumant", "Duangkaew", "Mary", "Patricio", "Eberhardt", "Berni", "Guoxiang", "Kazuhito", "Cristinel", "Kazuhide", "Lillian", "Mayuko"}
	lastNames  = []string{"Facello", "Simmel", "Bamford", "Koblick", "Maliniak", "Preusig", "Zielinski", "Kalloufi", "Peac", "Piveteau", "Sluis", "Bridgland", "Terkki", "Genin", "Nooteboom", "Cappelletti", "Bouloucos", "Peha", "Haddadi", "Warwick"}
	jobTitles  = []string{"Staff", "Senior Staff", "Engineer", "Senior Engineer", "Assistant Engineer", "Technique Leader"}
	deptNames  = []string{"Marketing", "Finance", "Human Resources", "Production", "Development", "Quality Management", "Sales", "Research", "Customer Service"}
)

// SeedData populates the schema with a synthetic workforce: every employee
// gets an open department, title and salary stream; a fraction also get a
// closed history row so the change-event reports have material.
func (ds *DataSeeder) SeedData(ctx context.Context, numEmployees int) error {
	start := time.Now()
	fmt.Println("🚀 Seeding data...")

	if err := ds.seedDepartments(ctx); err != nil {
		return err
	}
	fmt.Printf("✅ Created %d departments\n", len(deptNames))

	tx, err := ds.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	empStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO employees (emp_no, birth_date, first_name, last_name, gender, hire_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT DO NOTHING
	`)
	if err != nil {
		return err
	}
	defer empStmt.Close()

	assignStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO dept_emp (emp_no, dept_no, from_date, to_date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING
	`)
	if err != nil {
		return err
	}
	defer assignStmt.Close()

	titleStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO titles (emp_no, title, from_date, to_date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING
	`)
	if err != nil {
		return err
	}
	defer titleStmt.Close()

	salaryStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO salaries (emp_no, salary, from_date, to_date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING
	`)
	if err != nil {
		return err
	}
	defer salaryStmt.Close()

	titlesRows, historyRows := 0, 0
	for i := 0; i < numEmployees; i++ {
		empNo := 10001 + i
		birth := ds.randomDate(1952, 1999)
		hire := ds.randomDate(1985, 2020)
		gender := "M"
		if ds.rng.Intn(2) == 0 {
			gender = "F"
		}

		if _, err := empStmt.ExecContext(ctx, empNo, birth,
			firstNames[ds.rng.Intn(len(firstNames))],
			lastNames[ds.rng.Intn(len(lastNames))],
			gender, hire); err != nil {
			return fmt.Errorf("failed to insert employee %d: %w", empNo, err)
		}

		deptNo := fmt.Sprintf("d%03d", ds.rng.Intn(len(deptNames))+1)
		title := jobTitles[ds.rng.Intn(len(jobTitles))]
		salary := 40000 + ds.rng.Intn(80000)

		// roughly a third of the workforce carries a closed history row,
		// opened at hire and closed at a later change date
		if ds.rng.Intn(3) == 0 {
			change := hire.AddDate(1+ds.rng.Intn(5), 0, 0)
			oldDept := fmt.Sprintf("d%03d", ds.rng.Intn(len(deptNames))+1)
			oldTitle := jobTitles[ds.rng.Intn(len(jobTitles))]

			if _, err := assignStmt.ExecContext(ctx, empNo, oldDept, hire, change); err != nil {
				return fmt.Errorf("failed to insert dept history for %d: %w", empNo, err)
			}
			if _, err := titleStmt.ExecContext(ctx, empNo, oldTitle, hire, change); err != nil {
				return fmt.Errorf("failed to insert title history for %d: %w", empNo, err)
			}
			if _, err := salaryStmt.ExecContext(ctx, empNo, salary-ds.rng.Intn(10000), hire, change); err != nil {
				return fmt.Errorf("failed to insert salary history for %d: %w", empNo, err)
			}
			hire = change
			historyRows += 3
		}

		if _, err := assignStmt.ExecContext(ctx, empNo, deptNo, hire, temporal.SentinelMax); err != nil {
			return fmt.Errorf("failed to insert dept assignment for %d: %w", empNo, err)
		}
		if _, err := titleStmt.ExecContext(ctx, empNo, title, hire, temporal.SentinelMax); err != nil {
			return fmt.Errorf("failed to insert title for %d: %w", empNo, err)
		}
		if _, err := salaryStmt.ExecContext(ctx, empNo, salary, hire, temporal.SentinelMax); err != nil {
			return fmt.Errorf("failed to insert salary for %d: %w", empNo, err)
		}
		titlesRows += 3
	}

	// one current manager per department, drawn from the first employees
	mgrStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO dept_manager (emp_no, dept_no, from_date, to_date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING
	`)
	if err != nil {
		return err
	}
	defer mgrStmt.Close()

	managers := len(deptNames)
	if numEmployees < managers {
		managers = numEmployees
	}
	for d := 0; d < managers; d++ {
		deptNo := fmt.Sprintf("d%03d", d+1)
		if _, err := mgrStmt.ExecContext(ctx, 10001+d, deptNo, ds.randomDate(2010, 2020), temporal.SentinelMax); err != nil {
			return fmt.Errorf("failed to insert manager for %s: %w", deptNo, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	fmt.Printf("✅ Created %d employees, %d assignment rows (%d historical)\n", numEmployees, titlesRows+historyRows, historyRows)
	fmt.Printf("🎉 Done in %v\n", time.Since(start))
	return nil
}

func (ds *DataSeeder) seedDepartments(ctx context.Context) error {
	stmt, err := ds.db.PrepareContext(ctx, `
		INSERT INTO departments (dept_no, dept_name)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, name := range deptNames {
		if _, err := stmt.ExecContext(ctx, fmt.Sprintf("d%03d", i+1), name); err != nil {
			return fmt.Errorf("failed to insert department %q: %w", name, err)
		}
	}
	return nil
}

func (ds *DataSeeder) ClearData(ctx context.Context) error {
	fmt.Println("🗑️  Clearing data...")

	// children first
	tables := []string{"salaries", "titles", "dept_manager", "dept_emp", "employees", "departments"}
	for _, table := range tables {
		if _, err := ds.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	fmt.Println("✅ Cleared all tables")
	return nil
}

// Presets
type SeedPreset string

const (
	PresetSmall  SeedPreset = "small"
	PresetMedium SeedPreset = "medium"
	PresetLarge  SeedPreset = "large"
	PresetXLarge SeedPreset = "xlarge"
)

// GetPresetConfig returns the employee count for a preset
func GetPresetConfig(preset SeedPreset) int {
	switch preset {
	case PresetSmall:
		return 100
	case PresetMedium:
		return 1000
	case PresetLarge:
		return 10000
	case PresetXLarge:
		return 100000
	default:
		return 1000
	}
}

func (ds *DataSeeder) randomDate(minYear, maxYear int) time.Time {
	year := minYear + ds.rng.Intn(maxYear-minYear+1)
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, ds.rng.Intn(365))
}
