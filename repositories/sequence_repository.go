package repositories

import (
	"gorm.io/gorm"

	"recipehub-api/models"
)

// SequenceRepository allocates the human-facing sequential integer IDs for
// forum entities: current maximum of the ID column plus one, starting at 1
// on an empty table. IDs are never reused.
//
// Allocation is not guarded against concurrent creators: two overlapping
// reads can observe the same maximum and hand out the same ID, which then
// fails the unique key on insert. Accepted under the single-writer
// assumption this deployment runs with.
type SequenceRepository struct {
	db *gorm.DB
}

func NewSequenceRepository(db *gorm.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

func (r *SequenceRepository) NextCategoryID() (int, error) {
	return r.next(&models.Category{}, "category_id")
}

func (r *SequenceRepository) NextPostID() (int, error) {
	return r.next(&models.Post{}, "post_id")
}

func (r *SequenceRepository) NextCommentID() (int, error) {
	return r.next(&models.Comment{}, "comment_id")
}

func (r *SequenceRepository) next(model interface{}, column string) (int, error) {
	var maxID int
	err := r.db.Model(model).
		Select("COALESCE(MAX(" + column + "), 0)").
		Scan(&maxID).Error
	if err != nil {
		return 0, err
	}
	return maxID + 1, nil
}
