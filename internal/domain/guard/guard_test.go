package guard

import (
	"testing"

	"otobiznes/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	owner := &entity.User{ID: 1, Role: entity.RoleBusinessOwner}
	admin := &entity.User{ID: 2, Role: entity.RoleAdmin}
	plain := &entity.User{ID: 3, Role: entity.RoleUser}

	tests := []struct {
		name     string
		user     *entity.User
		required []entity.Role
		want     Decision
	}{
		{"anonymous on protected page", nil, nil, RedirectLogin},
		{"anonymous on admin page", nil, []entity.Role{entity.RoleAdmin}, RedirectLogin},
		{"owner on admin page", owner, []entity.Role{entity.RoleAdmin}, RedirectHome},
		{"plain user on owner page", plain, []entity.Role{entity.RoleBusinessOwner, entity.RoleAdmin}, RedirectHome},
		{"admin on admin page", admin, []entity.Role{entity.RoleAdmin}, Render},
		{"owner on owner page", owner, []entity.Role{entity.RoleBusinessOwner, entity.RoleAdmin}, Render},
		{"any role on authenticated page", plain, nil, Render},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.user, tt.required...))
		})
	}
}

func TestDecide_AlwaysRedirectsAnonymousToLogin(t *testing.T) {
	for _, role := range entity.AllRoles {
		d := Decide(nil, role)
		assert.Equal(t, RedirectLogin, d)
		assert.Equal(t, "/login", d.Location())
	}
}

func TestDecide_BusinessOwnerNeverSeesAdminPages(t *testing.T) {
	for id := int64(1); id <= 20; id++ {
		d := Decide(&entity.User{ID: id, Role: entity.RoleBusinessOwner}, entity.RoleAdmin)
		assert.Equal(t, RedirectHome, d)
		assert.Equal(t, "/", d.Location())
	}
}

func TestDecideSession(t *testing.T) {
	loading := entity.NewSession("a")
	loading.Begin()

	authenticated := entity.NewSession("b")
	authenticated.Authenticate(&entity.User{Role: entity.RoleAdmin})

	assert.Equal(t, RedirectLogin, DecideSession(nil))
	assert.Equal(t, Pending, DecideSession(loading))
	assert.Equal(t, RedirectLogin, DecideSession(entity.NewSession("c")))
	assert.Equal(t, Render, DecideSession(authenticated, entity.RoleAdmin))
	assert.Equal(t, "", Render.Location())
}
