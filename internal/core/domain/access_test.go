package domain_test

import (
	"testing"

	"github.com/bukukas/bukukas_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStores = []domain.Store{
	{StoreID: "id-a", Name: "Toko A"},
	{StoreID: "id-b", Name: "Toko B"},
	{StoreID: "id-c", Name: "Toko C"},
}

var testTransactions = []domain.Transaction{
	{TransactionID: "t1", StoreName: "Toko A", Amount: 100, Type: domain.Income},
	{TransactionID: "t2", StoreName: "Toko B", Amount: 200, Type: domain.Expense},
	{TransactionID: "t3", StoreName: "Toko A", Amount: 300, Type: domain.Expense},
}

func TestVisibleStores_Admin(t *testing.T) {
	scope := domain.AccessScope{Role: domain.RoleAdmin, Policy: domain.PolicyStrict}

	assert.Equal(t, testStores, scope.VisibleStores(testStores))
}

func TestVisibleStores_StoreAdmin(t *testing.T) {
	scope := domain.AccessScope{Role: domain.RoleStoreAdmin, StoreName: "Toko A", Policy: domain.PolicyStrict}

	visible := scope.VisibleStores(testStores)
	require.Len(t, visible, 1)
	assert.Equal(t, "Toko A", visible[0].Name)
}

func TestVisibleStores_StoreAdminUnknownStore(t *testing.T) {
	scope := domain.AccessScope{Role: domain.RoleStoreAdmin, StoreName: "Toko X", Policy: domain.PolicyStrict}

	assert.Empty(t, scope.VisibleStores(testStores))
	assert.False(t, scope.AssignedStoreResolved(testStores))
}

func TestVisibleTransactions_Policies(t *testing.T) {
	tests := []struct {
		name     string
		scope    domain.AccessScope
		expected int
	}{
		{"admin sees all", domain.AccessScope{Role: domain.RoleAdmin, Policy: domain.PolicyStrict}, 3},
		{"strict store-admin sees own store only", domain.AccessScope{Role: domain.RoleStoreAdmin, StoreName: "Toko A", Policy: domain.PolicyStrict}, 2},
		{"relaxed store-admin sees all", domain.AccessScope{Role: domain.RoleStoreAdmin, StoreName: "Toko A", Policy: domain.PolicyRelaxed}, 3},
		{"strict store-admin with no matching store sees none", domain.AccessScope{Role: domain.RoleStoreAdmin, StoreName: "Toko X", Policy: domain.PolicyStrict}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, tc.scope.VisibleTransactions(testTransactions), tc.expected)
		})
	}
}

func TestWritableStoreNames(t *testing.T) {
	admin := domain.AccessScope{Role: domain.RoleAdmin, Policy: domain.PolicyStrict}
	assert.Equal(t, []string{"Toko A", "Toko B", "Toko C"}, admin.WritableStoreNames(testStores))

	strict := domain.AccessScope{Role: domain.RoleStoreAdmin, StoreName: "Toko B", Policy: domain.PolicyStrict}
	assert.Equal(t, []string{"Toko B"}, strict.WritableStoreNames(testStores))

	relaxed := domain.AccessScope{Role: domain.RoleStoreAdmin, StoreName: "Toko B", Policy: domain.PolicyRelaxed}
	assert.Equal(t, []string{"Toko A", "Toko B", "Toko C"}, relaxed.WritableStoreNames(testStores))

	unresolved := domain.AccessScope{Role: domain.RoleStoreAdmin, StoreName: "Toko X", Policy: domain.PolicyStrict}
	assert.Empty(t, unresolved.WritableStoreNames(testStores))
}

func TestCanWriteStore(t *testing.T) {
	admin := domain.AccessScope{Role: domain.RoleAdmin, Policy: domain.PolicyStrict}
	assert.True(t, admin.CanWriteStore(testStores, "Toko A"))
	// Admins may attribute history to names not yet registered.
	assert.True(t, admin.CanWriteStore(testStores, "Toko Baru"))
	assert.False(t, admin.CanWriteStore(testStores, ""))

	strict := domain.AccessScope{Role: domain.RoleStoreAdmin, StoreName: "Toko A", Policy: domain.PolicyStrict}
	assert.True(t, strict.CanWriteStore(testStores, "Toko A"))
	assert.False(t, strict.CanWriteStore(testStores, "Toko B"))

	relaxed := domain.AccessScope{Role: domain.RoleStoreAdmin, StoreName: "Toko A", Policy: domain.PolicyRelaxed}
	assert.True(t, relaxed.CanWriteStore(testStores, "Toko B"))
}

func TestRolePermissions(t *testing.T) {
	admin := domain.AccessScope{Role: domain.RoleAdmin}
	assert.True(t, admin.CanManageStores())
	assert.True(t, admin.CanViewAnalytics())

	storeAdmin := domain.AccessScope{Role: domain.RoleStoreAdmin, StoreName: "Toko A", Policy: domain.PolicyRelaxed}
	assert.False(t, storeAdmin.CanManageStores())
	assert.False(t, storeAdmin.CanViewAnalytics())
}
