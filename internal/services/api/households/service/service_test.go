package service

import (
	"context"
	"testing"

	"mealboard/internal/modkit/repokit"
	perr "mealboard/internal/platform/errors"
	pnet "mealboard/internal/platform/net"
	"mealboard/internal/services/api/households/domain"
	"mealboard/internal/services/api/households/repo"
)

type fakeRepo struct {
	households map[string]domain.Household
	members    []domain.Member

	insertMemberErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{households: map[string]domain.Household{}}
}

func (f *fakeRepo) Insert(_ context.Context, h domain.Household) error {
	f.households[h.ID] = h
	return nil
}

func (f *fakeRepo) InsertMember(_ context.Context, m domain.Member) error {
	if f.insertMemberErr != nil {
		return f.insertMemberErr
	}
	f.members = append(f.members, m)
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (domain.Household, error) {
	h, ok := f.households[id]
	if !ok {
		return domain.Household{}, perr.NotFoundf("household %s not found", id)
	}
	return h, nil
}

func (f *fakeRepo) UpdateName(_ context.Context, id, name string) error {
	h, ok := f.households[id]
	if !ok {
		return perr.NotFoundf("household %s not found", id)
	}
	h.Name = name
	f.households[id] = h
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.households[id]; !ok {
		return perr.NotFoundf("household %s not found", id)
	}
	delete(f.households, id)
	kept := f.members[:0]
	for _, m := range f.members {
		if m.HouseholdID != id {
			kept = append(kept, m)
		}
	}
	f.members = kept
	return nil
}

func (f *fakeRepo) ListByUser(_ context.Context, userID string) ([]domain.Household, error) {
	var out []domain.Household
	for _, m := range f.members {
		if m.UserID == userID {
			out = append(out, f.households[m.HouseholdID])
		}
	}
	return out, nil
}

func (f *fakeRepo) ListMembers(_ context.Context, householdID string) ([]domain.Member, error) {
	var out []domain.Member
	for _, m := range f.members {
		if m.HouseholdID == householdID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeRepo) IsMember(_ context.Context, householdID, userID string) (bool, error) {
	for _, m := range f.members {
		if m.HouseholdID == householdID && m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) RoleOf(_ context.Context, householdID, userID string) (domain.Role, error) {
	for _, m := range f.members {
		if m.HouseholdID == householdID && m.UserID == userID {
			return m.Role, nil
		}
	}
	return "", perr.NotFoundf("no membership for household %s", householdID)
}

func (f *fakeRepo) Exists(_ context.Context, householdID string) (bool, error) {
	_, ok := f.households[householdID]
	return ok, nil
}

// fakeTx satisfies repokit.TxRunner without a database
type fakeTx struct{}

func (fakeTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) { return nil, nil }
func (fakeTx) Query(context.Context, string, ...any) (repokit.Rows, error)      { return nil, nil }
func (fakeTx) QueryRow(context.Context, string, ...any) repokit.Row             { return nil }
func (fakeTx) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error {
	return fn(fakeTx{})
}

func newSvc(fr *fakeRepo) *Svc {
	return New(fakeTx{}, repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return fr }))
}

func asUser(uid string) context.Context {
	return pnet.WithUser(context.Background(), uid)
}

func TestCreate_OwnsNewHousehold(t *testing.T) {
	fr := newFakeRepo()
	s := newSvc(fr)

	h, err := s.Create(asUser("u1"), domain.CreateInput{Name: "Smith family"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if h.ID == "" || h.CreatedBy != "u1" {
		t.Fatalf("bad household %+v", h)
	}
	if len(fr.members) != 1 {
		t.Fatalf("members = %d want 1", len(fr.members))
	}
	if m := fr.members[0]; m.Role != domain.RoleOwner || m.UserID != "u1" || m.HouseholdID != h.ID {
		t.Fatalf("bad owner member %+v", m)
	}
}

func TestCreate_RequiresUser(t *testing.T) {
	s := newSvc(newFakeRepo())

	_, err := s.Create(context.Background(), domain.CreateInput{Name: "nope"})
	if !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("code = %v want unauthorized", perr.CodeOf(err))
	}
}

func TestCreate_MemberInsertFailurePropagates(t *testing.T) {
	fr := newFakeRepo()
	fr.insertMemberErr = perr.DBf("boom")
	s := newSvc(fr)

	if _, err := s.Create(asUser("u1"), domain.CreateInput{Name: "Smith family"}); err == nil {
		t.Fatal("error swallowed")
	}
}

func TestJoin_Table(t *testing.T) {
	seed := func() *fakeRepo {
		fr := newFakeRepo()
		fr.households["h1"] = domain.Household{ID: "h1", Name: "Smiths"}
		fr.members = append(fr.members, domain.Member{HouseholdID: "h1", UserID: "owner", Role: domain.RoleOwner})
		return fr
	}

	tests := []struct {
		name     string
		user     string
		code     string
		wantCode perr.ErrorCode
	}{
		{name: "happy path", user: "u2", code: "h1"},
		{name: "unknown code", user: "u2", code: "h9", wantCode: perr.ErrorCodeNotFound},
		{name: "already a member", user: "owner", code: "h1", wantCode: perr.ErrorCodeConflict},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fr := seed()
			s := newSvc(fr)

			h, err := s.Join(asUser(tc.user), domain.JoinInput{InviteCode: tc.code})
			if tc.wantCode != perr.ErrorCodeUnknown {
				if !perr.IsCode(err, tc.wantCode) {
					t.Fatalf("code = %v want %v", perr.CodeOf(err), tc.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Join: %v", err)
			}
			if h.ID != "h1" {
				t.Fatalf("joined %q want h1", h.ID)
			}
			ok, _ := fr.IsMember(context.Background(), "h1", tc.user)
			if !ok {
				t.Fatal("membership row missing")
			}
		})
	}
}

func TestRequire_Table(t *testing.T) {
	fr := newFakeRepo()
	fr.households["h1"] = domain.Household{ID: "h1"}
	fr.members = append(fr.members, domain.Member{HouseholdID: "h1", UserID: "u1"})
	s := newSvc(fr)

	tests := []struct {
		name      string
		household string
		user      string
		wantCode  perr.ErrorCode
	}{
		{name: "member passes", household: "h1", user: "u1"},
		{name: "outsider forbidden", household: "h1", user: "u2", wantCode: perr.ErrorCodeForbidden},
		{name: "missing household", household: "nope", user: "u1", wantCode: perr.ErrorCodeNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := s.Require(context.Background(), tc.household, tc.user)
			if tc.wantCode == perr.ErrorCodeUnknown {
				if err != nil {
					t.Fatalf("Require: %v", err)
				}
				return
			}
			if !perr.IsCode(err, tc.wantCode) {
				t.Fatalf("code = %v want %v", perr.CodeOf(err), tc.wantCode)
			}
		})
	}
}

func TestRename_OwnerOnly(t *testing.T) {
	seed := func() *fakeRepo {
		fr := newFakeRepo()
		fr.households["h1"] = domain.Household{ID: "h1", Name: "Smiths"}
		fr.members = append(fr.members,
			domain.Member{HouseholdID: "h1", UserID: "owner", Role: domain.RoleOwner},
			domain.Member{HouseholdID: "h1", UserID: "joiner", Role: domain.RoleMember},
		)
		return fr
	}

	tests := []struct {
		name      string
		user      string
		household string
		wantCode  perr.ErrorCode
	}{
		{name: "owner renames", user: "owner", household: "h1"},
		{name: "plain member forbidden", user: "joiner", household: "h1", wantCode: perr.ErrorCodeForbidden},
		{name: "outsider forbidden", user: "stranger", household: "h1", wantCode: perr.ErrorCodeForbidden},
		{name: "missing household", user: "owner", household: "nope", wantCode: perr.ErrorCodeNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fr := seed()
			s := newSvc(fr)

			h, err := s.Rename(asUser(tc.user), tc.household, domain.RenameInput{Name: "Smith-Jones"})
			if tc.wantCode != perr.ErrorCodeUnknown {
				if !perr.IsCode(err, tc.wantCode) {
					t.Fatalf("code = %v want %v", perr.CodeOf(err), tc.wantCode)
				}
				if got := fr.households["h1"].Name; got != "Smiths" {
					t.Fatalf("name changed to %q despite rejection", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Rename: %v", err)
			}
			if h.Name != "Smith-Jones" || fr.households["h1"].Name != "Smith-Jones" {
				t.Fatalf("rename not applied: %+v", h)
			}
		})
	}
}

func TestDelete_OwnerOnly(t *testing.T) {
	fr := newFakeRepo()
	fr.households["h1"] = domain.Household{ID: "h1", Name: "Smiths"}
	fr.members = append(fr.members,
		domain.Member{HouseholdID: "h1", UserID: "owner", Role: domain.RoleOwner},
		domain.Member{HouseholdID: "h1", UserID: "joiner", Role: domain.RoleMember},
	)
	s := newSvc(fr)

	if err := s.Delete(asUser("joiner"), "h1"); !perr.IsCode(err, perr.ErrorCodeForbidden) {
		t.Fatalf("code = %v want forbidden", perr.CodeOf(err))
	}
	if _, ok := fr.households["h1"]; !ok {
		t.Fatal("household deleted despite rejection")
	}

	if err := s.Delete(asUser("owner"), "h1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := fr.households["h1"]; ok {
		t.Fatal("household still present")
	}
	if len(fr.members) != 0 {
		t.Fatalf("memberships survived the delete: %+v", fr.members)
	}
}

func TestMembers_RequiresMembership(t *testing.T) {
	fr := newFakeRepo()
	fr.households["h1"] = domain.Household{ID: "h1"}
	fr.members = append(fr.members, domain.Member{HouseholdID: "h1", UserID: "u1"})
	s := newSvc(fr)

	if _, err := s.Members(asUser("outsider"), "h1"); !perr.IsCode(err, perr.ErrorCodeForbidden) {
		t.Fatalf("code = %v want forbidden", perr.CodeOf(err))
	}

	out, err := s.Members(asUser("u1"), "h1")
	if err != nil {
		t.Fatalf("Members: %v", err)
	}
	if len(out.Members) != 1 {
		t.Fatalf("members = %d want 1", len(out.Members))
	}
}
