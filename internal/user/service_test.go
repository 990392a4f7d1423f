package user

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// countingRepository wraps FakeRepository to count database lookups,
// exposing whether the cache actually short-circuits them.
type countingRepository struct {
	*FakeRepository
	lookups int
}

func (c *countingRepository) GetUserByPlatformID(ctx context.Context, platform, platformID string) (*domain.User, error) {
	c.lookups++
	return c.FakeRepository.GetUserByPlatformID(ctx, platform, platformID)
}

func seedUser(repo *FakeRepository, username, twitchID, discordID string) *domain.User {
	u := &domain.User{
		Username:  username,
		TwitchID:  twitchID,
		DiscordID: discordID,
	}
	_ = repo.UpsertUser(context.Background(), u)
	return u
}

func TestRegisterUser(t *testing.T) {
	repo := NewFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	registered, err := svc.RegisterUser(ctx, domain.PlatformTwitch, "charlie789", "charlie")
	if err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}

	if registered.ID == "" {
		t.Error("Expected user ID to be set")
	}
	if registered.Username != "charlie" {
		t.Errorf("Expected username charlie, got %s", registered.Username)
	}
	if registered.TwitchID != "charlie789" {
		t.Errorf("Expected twitch ID charlie789, got %s", registered.TwitchID)
	}

	// Verify user in repo
	found, err := repo.GetUserByPlatformID(ctx, domain.PlatformTwitch, "charlie789")
	if err != nil || found == nil {
		t.Fatalf("User not found in repository: %v", err)
	}
}

func TestRegisterUser_ExistingIdentity(t *testing.T) {
	repo := NewFakeRepository()
	seeded := seedUser(repo, "alice", "alice123", "")
	svc := NewService(repo)
	ctx := context.Background()

	registered, err := svc.RegisterUser(ctx, domain.PlatformTwitch, "alice123", "someone_else")
	if err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}

	if registered.ID != seeded.ID {
		t.Errorf("Expected existing user %s, got %s", seeded.ID, registered.ID)
	}
	if registered.Username != "alice" {
		t.Errorf("Existing username should be kept, got %s", registered.Username)
	}
}

func TestRegisterUser_InvalidInput(t *testing.T) {
	repo := NewFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	tests := []struct {
		name       string
		platform   string
		platformID string
		username   string
		wantErr    error
	}{
		{name: "unknown platform", platform: "myspace", platformID: "x1", username: "alice", wantErr: domain.ErrInvalidPlatform},
		{name: "empty platform", platform: "", platformID: "x1", username: "alice", wantErr: domain.ErrInvalidPlatform},
		{name: "empty platform id", platform: domain.PlatformTwitch, platformID: "", username: "alice", wantErr: domain.ErrInvalidInput},
		{name: "blank username", platform: domain.PlatformTwitch, platformID: "x1", username: "   ", wantErr: domain.ErrInvalidInput},
		{name: "username too long", platform: domain.PlatformTwitch, platformID: "x1", username: strings.Repeat("a", domain.UsernameMaxLen+1), wantErr: domain.ErrInvalidInput},
		{name: "username with control characters", platform: domain.PlatformTwitch, platformID: "x1", username: "al\nice", wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(ctx, tt.platform, tt.platformID, tt.username)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestResolveDisplayName_NewUser(t *testing.T) {
	repo := NewFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	name, err := svc.ResolveDisplayName(ctx, domain.PlatformDiscord, "disc-42", "newcomer")
	if err != nil {
		t.Fatalf("ResolveDisplayName failed: %v", err)
	}
	if name != "newcomer" {
		t.Errorf("Expected newcomer, got %s", name)
	}

	// Verify the identity was auto-registered
	found, err := repo.GetUserByPlatformID(ctx, domain.PlatformDiscord, "disc-42")
	if err != nil || found == nil {
		t.Fatalf("User should have been created: %v", err)
	}
	if found.Username != "newcomer" {
		t.Errorf("Unexpected stored username %s", found.Username)
	}
}

func TestResolveDisplayName_ExistingUser(t *testing.T) {
	repo := NewFakeRepository()
	seedUser(repo, "Alice", "alice123", "")
	svc := NewService(repo)
	ctx := context.Background()

	// The stored username wins over whatever the caller supplies
	name, err := svc.ResolveDisplayName(ctx, domain.PlatformTwitch, "alice123", "alice_on_stream")
	if err != nil {
		t.Fatalf("ResolveDisplayName failed: %v", err)
	}
	if name != "Alice" {
		t.Errorf("Expected Alice, got %s", name)
	}
}

func TestResolveDisplayName_CachesLookups(t *testing.T) {
	base := NewFakeRepository()
	seedUser(base, "Alice", "alice123", "")
	repo := &countingRepository{FakeRepository: base}
	svc := NewService(repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		name, err := svc.ResolveDisplayName(ctx, domain.PlatformTwitch, "alice123", "alice")
		if err != nil {
			t.Fatalf("ResolveDisplayName failed: %v", err)
		}
		if name != "Alice" {
			t.Errorf("Expected Alice, got %s", name)
		}
	}

	if repo.lookups != 1 {
		t.Errorf("Expected 1 database lookup, got %d", repo.lookups)
	}

	stats := svc.GetCacheStats()
	if stats.Hits != 2 {
		t.Errorf("Expected 2 cache hits, got %d", stats.Hits)
	}
	if stats.Size != 1 {
		t.Errorf("Expected cache size 1, got %d", stats.Size)
	}
}

func TestResolveDisplayName_InvalidInput(t *testing.T) {
	repo := NewFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.ResolveDisplayName(ctx, "myspace", "x1", "alice"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Expected invalid input for unknown platform, got %v", err)
	}
	if _, err := svc.ResolveDisplayName(ctx, domain.PlatformTwitch, "x1", "  "); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Expected invalid input for blank username, got %v", err)
	}
}

func TestUpdateUsername(t *testing.T) {
	repo := NewFakeRepository()
	seedUser(repo, "Alice", "alice123", "disc-1")
	svc := NewService(repo)
	ctx := context.Background()

	// Warm the cache so the rename has something to invalidate
	if _, err := svc.ResolveDisplayName(ctx, domain.PlatformTwitch, "alice123", "Alice"); err != nil {
		t.Fatalf("ResolveDisplayName failed: %v", err)
	}

	updated, err := svc.UpdateUsername(ctx, domain.PlatformTwitch, "alice123", "AliceTheBold")
	if err != nil {
		t.Fatalf("UpdateUsername failed: %v", err)
	}
	if updated.Username != "AliceTheBold" {
		t.Errorf("Expected AliceTheBold, got %s", updated.Username)
	}

	// A fresh resolve must see the new name, not the cached one
	name, err := svc.ResolveDisplayName(ctx, domain.PlatformTwitch, "alice123", "Alice")
	if err != nil {
		t.Fatalf("ResolveDisplayName failed: %v", err)
	}
	if name != "AliceTheBold" {
		t.Errorf("Cache served a stale username: %s", name)
	}
}

func TestUpdateUsername_NotFound(t *testing.T) {
	repo := NewFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.UpdateUsername(ctx, domain.PlatformTwitch, "ghost", "whoever")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUsername_Validation(t *testing.T) {
	repo := NewFakeRepository()
	seedUser(repo, "Alice", "alice123", "")
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.UpdateUsername(ctx, domain.PlatformTwitch, "alice123", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Expected invalid input for empty username, got %v", err)
	}
	long := strings.Repeat("b", domain.UsernameMaxLen+1)
	if _, err := svc.UpdateUsername(ctx, domain.PlatformTwitch, "alice123", long); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Expected invalid input for oversized username, got %v", err)
	}
}

func TestFindUserByPlatformID(t *testing.T) {
	repo := NewFakeRepository()
	seeded := seedUser(repo, "Alice", "alice123", "")
	svc := NewService(repo)
	ctx := context.Background()

	found, err := svc.FindUserByPlatformID(ctx, domain.PlatformTwitch, "alice123")
	if err != nil {
		t.Fatalf("FindUserByPlatformID failed: %v", err)
	}
	if found.ID != seeded.ID {
		t.Errorf("Expected user %s, got %s", seeded.ID, found.ID)
	}

	_, err = svc.FindUserByPlatformID(ctx, domain.PlatformTwitch, "nonexistent")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestGetUserByPlatformUsername(t *testing.T) {
	repo := NewFakeRepository()
	seedUser(repo, "Alice", "alice123", "")
	svc := NewService(repo)
	ctx := context.Background()

	found, err := svc.GetUserByPlatformUsername(ctx, domain.PlatformTwitch, "ALICE")
	if err != nil {
		t.Fatalf("GetUserByPlatformUsername failed: %v", err)
	}
	if found.Username != "Alice" {
		t.Errorf("Expected Alice, got %s", found.Username)
	}

	// Alice has no youtube link
	_, err = svc.GetUserByPlatformUsername(ctx, domain.PlatformYoutube, "alice")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}
