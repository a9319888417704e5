package orders

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterChecklist_DropsUnknownAndDuplicates(t *testing.T) {
	got := FilterChecklist([]string{"Database", "UnknownItem", "Hosting", "Database"})
	require.Equal(t, []string{"Database", "Hosting"}, got)
}

func TestFilterChecklist_Empty(t *testing.T) {
	require.Empty(t, FilterChecklist(nil))
	require.Empty(t, FilterChecklist([]string{"Nope"}))
}

func TestCatalogMembership(t *testing.T) {
	require.True(t, ValidProjectType("SaaS"))
	require.False(t, ValidProjectType("Mobile App"))
	require.True(t, ValidDeliveryMethod("Google Drive"))
	require.False(t, ValidDeliveryMethod("FTP"))
}
