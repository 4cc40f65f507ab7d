package db_test

import (
	"context"
	"database/sql"

	"bookshelf/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       string `gorm:"primaryKey"`
	Username string
}

var _ = Describe("PostgresDB", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})

		JustBeforeEach(func() {
			err = testDB.MigrateTable(ctx, &Test{})
		})

		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Insert", func() {
		When("the row is new", func() {
			BeforeEach(func() {
				mock.ExpectExec(`INSERT INTO "tests" \("id","username"\) VALUES \(\$1,\$2\)`).
					WithArgs("u1", "Alice").
					WillReturnResult(sqlmock.NewResult(0, 1))
			})

			It("should insert the record", func() {
				err := testDB.Insert(ctx, &Test{ID: "u1", Username: "Alice"})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a unique constraint is violated", func() {
			BeforeEach(func() {
				mock.ExpectExec(`INSERT INTO "tests"`).
					WillReturnError(gorm.ErrDuplicatedKey)
			})

			It("should return ErrDuplicate", func() {
				err := testDB.Insert(ctx, &Test{ID: "u1", Username: "Alice"})
				Expect(err).To(MatchError(db.ErrDuplicate))
			})
		})

		When("the database fails", func() {
			BeforeEach(func() {
				mock.ExpectExec(`INSERT INTO "tests"`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should wrap the error", func() {
				err := testDB.Insert(ctx, &Test{ID: "u1", Username: "Alice"})
				Expect(err).To(MatchError(ContainSubstring("insert to table")))
				Expect(err).To(MatchError(sql.ErrConnDone))
			})
		})
	})

	Describe("InsertIgnore", func() {
		BeforeEach(func() {
			mock.ExpectExec(`INSERT INTO "tests" .* ON CONFLICT DO NOTHING`).
				WithArgs("u1", "Alice").
				WillReturnResult(sqlmock.NewResult(0, 0))
		})

		It("should not fail when nothing was inserted", func() {
			err := testDB.InsertIgnore(ctx, &Test{ID: "u1", Username: "Alice"})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow("u1", "Alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal("u1"))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllBy", func() {
		When("multiple records are found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY id`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow("u1", "Alice").
						AddRow("u2", "Alice"))
			})

			It("should return all matching records in order", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, "username", "Alice", "id", &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].ID).To(Equal("u1"))
				Expect(results[1].ID).To(Equal("u2"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username.*`).
					WithArgs("Invalid").
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, "username", "Invalid", "", &results)
				Expect(err).To(MatchError(ContainSubstring("getting records by")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("DeleteWhere", func() {
		When("rows match", func() {
			BeforeEach(func() {
				mock.ExpectExec(`DELETE FROM "tests" WHERE "username" = \$1`).
					WithArgs("Alice").
					WillReturnResult(sqlmock.NewResult(0, 2))
			})

			It("should report the deleted rows", func() {
				n, err := testDB.DeleteWhere(ctx, &Test{}, map[string]any{"username": "Alice"})
				Expect(err).NotTo(HaveOccurred())
				Expect(n).To(Equal(int64(2)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no conditions are given", func() {
			It("should refuse to delete", func() {
				_, err := testDB.DeleteWhere(ctx, &Test{}, nil)
				Expect(err).To(HaveOccurred())
			})
		})
	})
})
