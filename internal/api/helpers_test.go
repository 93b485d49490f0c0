package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"mrp-access/internal/db/memstore"
	"mrp-access/internal/domain"
	"mrp-access/internal/policy"
	"mrp-access/internal/service/governance"
	"mrp-access/internal/service/records"
	"mrp-access/internal/service/security"
)

const testPrincipalHeader = "X-Test-Principal"

type testEnv struct {
	srv   *httptest.Server
	store *memstore.Store
	ids   map[string]string
}

// setupTestServer wires the handler over an in-memory store holding the
// manufacturing groups and these principals:
//
//	admin     admin flag, member of system
//	mfg       manufacturing-user
//	manager   manufacturing-manager (nested in manufacturing-user)
//	employee  generic-employee
//	nobody    no groups
//
// Requests authenticate by setting the X-Test-Principal header.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	store := memstore.New()
	env := &testEnv{store: store, ids: map[string]string{}}

	for _, name := range []string{
		domain.GroupSystem, domain.GroupManufacturingUser,
		domain.GroupManufacturingManager, domain.GroupGenericEmployee,
	} {
		g, err := store.Groups().Create(ctx, &domain.Group{Name: name})
		require.NoError(t, err)
		env.ids[name] = g.ID
	}
	require.NoError(t, store.Groups().AddMember(ctx, &domain.GroupMember{
		GroupID: env.ids[domain.GroupManufacturingUser], MemberType: domain.MemberTypeGroup,
		MemberID: env.ids[domain.GroupManufacturingManager],
	}))

	users := []struct {
		name, group string
		admin       bool
	}{
		{"admin", domain.GroupSystem, true},
		{"mfg", domain.GroupManufacturingUser, false},
		{"manager", domain.GroupManufacturingManager, false},
		{"employee", domain.GroupGenericEmployee, false},
		{"nobody", "", false},
	}
	for _, u := range users {
		p, err := store.Principals().Create(ctx, &domain.Principal{Name: u.name, IsAdmin: u.admin})
		require.NoError(t, err)
		env.ids[u.name] = p.ID
		if u.group != "" {
			require.NoError(t, store.Groups().AddMember(ctx, &domain.GroupMember{
				GroupID: env.ids[u.group], MemberType: domain.MemberTypeUser, MemberID: p.ID,
			}))
		}
	}

	table := policy.Default()
	gate := security.NewAccessGate(table)
	resolver := security.NewResolver(store.Principals(), store.Groups())
	h := NewHandler(Deps{
		Records: records.NewRecordService(records.Deps{
			Repo: store.Records(), Gate: gate, Audit: store.Audit(),
		}),
		Principals: security.NewPrincipalService(store.Principals(), store.Audit()),
		Groups:     security.NewGroupService(store.Groups(), store.Principals(), store.Audit()),
		Authz:      security.NewAuthorizationService(gate, resolver),
		Resolver:   resolver,
		Audit:      governance.NewAuditService(store.Audit(), 0),
		Policy:     table,
	})

	r := chi.NewRouter()
	r.Get("/healthz", Healthz)
	r.Route("/v1", func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				name := req.Header.Get(testPrincipalHeader)
				if name != "" {
					p, err := store.Principals().GetByName(req.Context(), name)
					require.NoError(t, err)
					req = req.WithContext(domain.WithPrincipal(req.Context(), domain.ContextPrincipal{
						Name: p.Name, IsAdmin: p.IsAdmin, Type: p.Type,
					}))
				}
				next.ServeHTTP(w, req)
			})
		})
		h.Register(r)
	})

	env.srv = httptest.NewServer(r)
	t.Cleanup(env.srv.Close)
	return env
}

// do issues a request as principal and decodes the JSON response into out
// when out is non-nil.
func (e *testEnv) do(t *testing.T, principal, method, path string, body any, out any) int {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, e.srv.URL+path, rdr)
	require.NoError(t, err)
	if principal != "" {
		req.Header.Set(testPrincipalHeader, principal)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// doRaw issues a request with a raw string body.
func (e *testEnv) doRaw(t *testing.T, principal, method, path, body string) int {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), method, e.srv.URL+path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set(testPrincipalHeader, principal)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp.StatusCode
}
