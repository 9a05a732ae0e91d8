package auth

import "testing"

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register("Test Operator", "test@example.com", password, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["test@example.com"]
	if user == nil {
		t.Fatalf("user not found")
	}

	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestRegisterRoleDefaultsToOperator(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	user, err := service.Register("Test Operator", "op@example.com", "Password@123", "SUPERUSER")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != RoleOperator {
		t.Fatalf("unknown roles must fall back to OPERATOR, got %q", user.Role)
	}
}

func TestAdminRoleOnlyBootstrapsFirstAccount(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	first, err := service.Register("First Admin", "admin@example.com", "Password@123", RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Role != RoleAdmin {
		t.Fatalf("first account should bootstrap as ADMIN, got %q", first.Role)
	}

	second, err := service.Register("Wannabe Admin", "second@example.com", "Password@123", RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Role != RoleOperator {
		t.Fatalf("self-registered ADMIN after bootstrap must become OPERATOR, got %q", second.Role)
	}
}
