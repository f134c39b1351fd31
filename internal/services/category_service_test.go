package services

import (
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/testutil"
)

func TestCreateCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		cat, err := svc.CreateCategory(user.ID, "  Groceries ", models.CategoryTypeExpense, "Food shopping", "cart", "#FF0000")
		testutil.AssertNoError(t, err)

		if cat.ID == "" {
			t.Fatal("expected category ID")
		}
		if cat.Name != "Groceries" {
			t.Errorf("expected trimmed name Groceries, got %q", cat.Name)
		}
		if cat.IsSystem {
			t.Error("user categories must not be system categories")
		}
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user.ID, "Food", models.CategoryTypeExpense, "", "", "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateCategory(user.ID, "Food", models.CategoryTypeIncome, "", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("same_name_other_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		a := testutil.CreateTestUser(t, db)
		b := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(a.ID, "Food", models.CategoryTypeExpense, "", "", "")
		testutil.AssertNoError(t, err)
		_, err = svc.CreateCategory(b.ID, "Food", models.CategoryTypeExpense, "", "", "")
		testutil.AssertNoError(t, err)
	})

	t.Run("transfer_type_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user.ID, "Moves", models.CategoryTypeTransfer, "", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user.ID, "   ", models.CategoryTypeExpense, "", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCategoryService(db)
	user := testutil.CreateTestUser(t, db)

	for _, name := range []string{"Salary", "Rent", "Food"} {
		typ := models.CategoryTypeExpense
		if name == "Salary" {
			typ = models.CategoryTypeIncome
		}
		_, err := svc.CreateCategory(user.ID, name, typ, "", "", "")
		testutil.AssertNoError(t, err)
	}

	t.Run("all_sorted_by_name", func(t *testing.T) {
		page, err := svc.GetUserCategories(user.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 3 {
			t.Fatalf("expected 3 categories, got %d", page.TotalItems)
		}
		if page.Data[0].Name != "Food" || page.Data[2].Name != "Salary" {
			t.Errorf("unexpected order: %s, %s, %s", page.Data[0].Name, page.Data[1].Name, page.Data[2].Name)
		}
	})

	t.Run("by_type", func(t *testing.T) {
		page, err := svc.GetUserCategoriesByType(user.ID, models.CategoryTypeIncome, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 1 || page.Data[0].Name != "Salary" {
			t.Errorf("expected only Salary, got %+v", page.Data)
		}
	})

	t.Run("paginated", func(t *testing.T) {
		page, err := svc.GetUserCategories(user.ID, pagination.PageRequest{Page: 2, PageSize: 2})
		testutil.AssertNoError(t, err)
		if len(page.Data) != 1 || page.TotalPages != 2 {
			t.Errorf("expected 1 item on page 2 of 2, got %d items of %d pages", len(page.Data), page.TotalPages)
		}
	})
}

func TestUpdateAndDeleteCategory(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		updated, err := svc.UpdateCategory(user.ID, cat.ID, "Dining", "", "", "#00FF00")
		testutil.AssertNoError(t, err)
		if updated.Name != "Dining" || updated.Color != "#00FF00" {
			t.Errorf("unexpected update result: %+v", updated)
		}
		if updated.Type != cat.Type {
			t.Errorf("type should be unchanged, got %s", updated.Type)
		}
	})

	t.Run("rename_to_existing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		a := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		b := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		_, err := svc.UpdateCategory(user.ID, b.ID, a.Name, "", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("delete", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		testutil.AssertNoError(t, svc.DeleteCategory(user.ID, cat.ID))

		_, err := svc.GetCategoryByID(user.ID, cat.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("other_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, owner.ID, models.CategoryTypeExpense)

		err := svc.DeleteCategory(other.ID, cat.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestSystemCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCategoryService(db)
	user := testutil.CreateTestUser(t, db)

	first, err := svc.EnsureSystemCategory(db, user.ID, models.CategoryNameTransfer, models.CategoryTypeTransfer)
	testutil.AssertNoError(t, err)
	if !first.IsSystem {
		t.Fatal("expected a system category")
	}

	again, err := svc.EnsureSystemCategory(db, user.ID, models.CategoryNameTransfer, models.CategoryTypeTransfer)
	testutil.AssertNoError(t, err)
	if again.ID != first.ID {
		t.Errorf("expected the same category, got %s and %s", first.ID, again.ID)
	}

	_, err = svc.UpdateCategory(user.ID, first.ID, "Moves", "", "", "")
	testutil.AssertAppError(t, err, "SYSTEM_CATEGORY")

	err = svc.DeleteCategory(user.ID, first.ID)
	testutil.AssertAppError(t, err, "SYSTEM_CATEGORY")
}
