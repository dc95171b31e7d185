package repositories

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"recipehub-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Post{}, &models.Comment{}); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

func TestNextIDStartsAtOne(t *testing.T) {
	db := newTestDB(t)
	sequences := NewSequenceRepository(db)

	for name, next := range map[string]func() (int, error){
		"category": sequences.NextCategoryID,
		"post":     sequences.NextPostID,
		"comment":  sequences.NextCommentID,
	} {
		id, err := next()
		if err != nil {
			t.Fatalf("%s allocation failed: %v", name, err)
		}
		if id != 1 {
			t.Errorf("first %s id = %d, want 1", name, id)
		}
	}
}

func TestNextIDIsMaxPlusOne(t *testing.T) {
	db := newTestDB(t)
	sequences := NewSequenceRepository(db)

	for _, id := range []int{1, 2, 7} {
		category := models.Category{CategoryID: id, Title: "t", Subtitle: "s"}
		if err := db.Create(&category).Error; err != nil {
			t.Fatalf("seeding category %d: %v", id, err)
		}
	}

	id, err := sequences.NextCategoryID()
	if err != nil {
		t.Fatalf("allocation failed: %v", err)
	}
	if id != 8 {
		t.Errorf("next id = %d, want 8 (max+1, gaps are not refilled)", id)
	}
}

func TestAdjustIncrementsMatchedRowsOnly(t *testing.T) {
	db := newTestDB(t)
	counters := NewCounterRepository(db)

	for id := 1; id <= 2; id++ {
		category := models.Category{CategoryID: id, Title: "t", Subtitle: "s"}
		if err := db.Create(&category).Error; err != nil {
			t.Fatalf("seeding category %d: %v", id, err)
		}
	}

	if err := counters.Adjust(&models.Category{}, "number_of_posts", 2, "category_id = ?", 1); err != nil {
		t.Fatalf("Adjust failed: %v", err)
	}
	if err := counters.Adjust(&models.Category{}, "number_of_posts", -1, "category_id = ?", 1); err != nil {
		t.Fatalf("Adjust failed: %v", err)
	}

	var touched, untouched models.Category
	if err := db.First(&touched, "category_id = ?", 1).Error; err != nil {
		t.Fatalf("reloading category: %v", err)
	}
	if err := db.First(&untouched, "category_id = ?", 2).Error; err != nil {
		t.Fatalf("reloading category: %v", err)
	}
	if touched.NumberOfPosts != 1 {
		t.Errorf("number_of_posts = %d, want 1", touched.NumberOfPosts)
	}
	if untouched.NumberOfPosts != 0 {
		t.Errorf("unmatched row was adjusted: number_of_posts = %d", untouched.NumberOfPosts)
	}
}

func TestAdjustMissingRowIsNoOp(t *testing.T) {
	db := newTestDB(t)
	counters := NewCounterRepository(db)

	if err := counters.Adjust(&models.Category{}, "number_of_posts", 1, "category_id = ?", 42); err != nil {
		t.Errorf("Adjust on a missing row returned %v, want nil", err)
	}
}
