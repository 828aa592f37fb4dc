package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/dmitrijs2005/grievdesk/internal/catalog"
)

// catalogSections is the display order of the public lists.
var catalogSections = []string{
	catalog.SectionDesignations,
	catalog.SectionTrades,
	catalog.SectionGrievanceTypes,
	catalog.SectionAuthoritiesRedressal,
	catalog.SectionAuthoritiesIssuing,
}

func (a *App) fetchCatalog(ctx context.Context) (map[string][]string, error) {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	lists, err := a.api.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	a.catalog = lists
	return lists, nil
}

func (a *App) Catalog(ctx context.Context) error {
	lists, err := a.fetchCatalog(ctx)
	if err != nil {
		log.Printf("error loading catalog: %v", err)
		return err
	}

	for _, section := range catalogSections {
		fmt.Fprintf(a.out, "%s (%d)\n", section, len(lists[section]))
		for _, v := range lists[section] {
			fmt.Fprintf(a.out, "  - %s\n", v)
		}
	}
	return nil
}
