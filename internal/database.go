package internal

import (
	"fmt"

	"EDMS/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(cfg *config.Config) error {
	dsn := cfg.Database.DSN()

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate the schema
	if err := autoMigrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	fmt.Println("Database connected and migrated successfully")
	return nil
}

func autoMigrate() error {
	// Create tables only if they don't exist (preserve existing data)
	fmt.Println("Ensuring employees table exists...")
	result := DB.Exec(`
        CREATE TABLE IF NOT EXISTS employees (
            employee_id varchar(50) PRIMARY KEY,
            name text NOT NULL,
            division varchar(100),
            status varchar(20),
            created_at timestamp(3) NULL,
            updated_at timestamp(3) NULL
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create employees table: %w", result.Error)
	}

	fmt.Println("Creating documents table if not exists...")
	result = DB.Exec(`
        CREATE TABLE IF NOT EXISTS documents (
            id varchar(191) PRIMARY KEY,
            employee_id varchar(50) NOT NULL,
            doc_type text NOT NULL,
            doc_number int DEFAULT 1,
            sender text,
            receiver text,
            date_filled timestamp(3) NULL,
            date_sent timestamp(3) NULL,
            status varchar(20) NULL,
            created_at timestamp(3) NULL,
            updated_at timestamp(3) NULL
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create documents table: %w", result.Error)
	}

	// No foreign key constraint on documents.employee_id: deleting an
	// employee must leave its document rows untouched.
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_documents_employee_id ON documents(employee_id)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_documents_created_at ON documents(created_at)")

	ensureDocumentsColumns := map[string]string{
		"doc_number":  "ALTER TABLE documents ADD COLUMN doc_number int DEFAULT 1",
		"sender":      "ALTER TABLE documents ADD COLUMN sender text",
		"receiver":    "ALTER TABLE documents ADD COLUMN receiver text",
		"date_filled": "ALTER TABLE documents ADD COLUMN date_filled timestamp(3) NULL",
		"date_sent":   "ALTER TABLE documents ADD COLUMN date_sent timestamp(3) NULL",
		"status":      "ALTER TABLE documents ADD COLUMN status varchar(20) NULL",
		"created_at":  "ALTER TABLE documents ADD COLUMN created_at timestamp(3) NULL",
		"updated_at":  "ALTER TABLE documents ADD COLUMN updated_at timestamp(3) NULL",
	}

	for column, stmt := range ensureDocumentsColumns {
		if err := ensureColumn("documents", column, stmt); err != nil {
			return err
		}
	}

	fmt.Println("Creating activity_logs table if not exists...")
	result = DB.Exec(`
        CREATE TABLE IF NOT EXISTS activity_logs (
            id varchar(191) PRIMARY KEY,
            method varchar(10) NOT NULL,
            path varchar(255) NOT NULL,
            user_agent text,
            ip_address varchar(45),
            request_body text,
            query_params text,
            status_code int NOT NULL,
            response_time bigint NOT NULL,
            user_id varchar(36),
            user_email varchar(255),
            created_at timestamp(3) NULL,
            updated_at timestamp(3) NULL
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create activity_logs table: %w", result.Error)
	}

	DB.Exec("CREATE INDEX IF NOT EXISTS idx_activity_logs_method ON activity_logs(method)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_activity_logs_path ON activity_logs(path)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_activity_logs_created_at ON activity_logs(created_at)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_activity_logs_user_id ON activity_logs(user_id)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_activity_logs_user_email ON activity_logs(user_email)")

	// Create statistics table for tracking create/update/delete events
	fmt.Println("Creating statistics table if not exists...")
	result = DB.Exec(`
        CREATE TABLE IF NOT EXISTS statistics (
            id varchar(36) PRIMARY KEY,
            event_type varchar(50) NOT NULL,
            employee_id varchar(50),
            date date NOT NULL,
            count bigint NOT NULL DEFAULT 0,
            created_at timestamp(3) NULL,
            updated_at timestamp(3) NULL
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create statistics table: %w", result.Error)
	}

	DB.Exec("CREATE INDEX IF NOT EXISTS idx_statistics_event_type ON statistics(event_type)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_statistics_employee_id ON statistics(employee_id)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_statistics_date ON statistics(date)")
	// Composite index for efficient upsert lookups
	DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_statistics_unique ON statistics(event_type, employee_id, date)")

	fmt.Println("Tables created/verified successfully")
	return nil
}

func ensureColumn(table, column, statement string) error {
	if DB.Migrator().HasColumn(table, column) {
		return nil
	}

	fmt.Printf("Adding missing column %s.%s...\n", table, column)
	if err := DB.Exec(statement).Error; err != nil {
		return fmt.Errorf("failed to add column %s.%s: %w", table, column, err)
	}

	return nil
}

func CloseDB() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
