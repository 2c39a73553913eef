// Command emi-quote is a terminal storefront over the catalog API: it lists
// products by brand or opens one product, applies color/storage/plan choices
// and prints the EMI quote.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/go-faster/errors"

	"github.com/Madhav-Gupta-28/emi-store-backend-go/client"
	"github.com/Madhav-Gupta-28/emi-store-backend-go/config"
	"github.com/Madhav-Gupta-28/emi-store-backend-go/viewmodel"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	api := flag.String("api", cfg.ResolveAPIBase(), "catalog API base URL")
	brand := flag.String("brand", viewmodel.AllBrands, "brand filter for the catalog listing")
	slug := flag.String("slug", "", "product slug to open")
	color := flag.Int("color", 0, "color index")
	storage := flag.Int("storage", 0, "storage tier index")
	plan := flag.Int("plan", viewmodel.NoPlan, "EMI plan index within the storage tier")
	proceed := flag.Bool("proceed", false, "proceed with the selected plan")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := client.New(*api)
	if *slug == "" {
		if err := listCatalog(ctx, c, *brand); err != nil {
			log.Fatal(err)
		}
		return
	}

	picks := choice{color: *color, storage: *storage, plan: *plan, proceed: *proceed}
	if err := openProduct(ctx, c, *slug, picks, cfg.ColorTransition); err != nil {
		log.Fatal(err)
	}
}

type choice struct {
	color   int
	storage int
	plan    int
	proceed bool
}

func listCatalog(ctx context.Context, c *client.Client, brand string) error {
	page := viewmodel.NewCatalogPage(c)
	defer page.Close()

	if err := page.LoadBrands(ctx); err != nil {
		return err
	}
	if err := page.SelectBrand(ctx, brand); err != nil {
		return err
	}
	renderCatalog(os.Stdout, page.Filters(), page.ActiveBrand(), page.Cards())
	return nil
}

func openProduct(ctx context.Context, c *client.Client, slug string, ch choice, transition time.Duration) error {
	page := viewmodel.NewProductPage(c,
		viewmodel.WithSelectionOptions(viewmodel.WithTransitionDelay(transition)))
	defer page.Close()

	if err := page.Load(ctx, slug); err != nil {
		if errors.Is(err, client.ErrNotFound) || page.Status() == viewmodel.StatusAbsent {
			renderAbsent(os.Stdout, slug)
			return nil
		}
		return err
	}

	sel := page.Selection()
	if err := applyChoice(sel, ch); err != nil {
		return err
	}
	waitForImage(ctx, sel, transition)

	renderProduct(os.Stdout, sel)
	if ch.proceed {
		msg, err := sel.Proceed()
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, msg)
	}
	return nil
}

// applyChoice replays the user's picks in page order: color and storage both
// clear the plan, so the plan goes last.
func applyChoice(sel *viewmodel.Selection, ch choice) error {
	if err := sel.SelectColor(ch.color); err != nil {
		return err
	}
	if err := sel.SelectStorage(ch.storage); err != nil {
		return err
	}
	if ch.plan != viewmodel.NoPlan {
		if err := sel.SelectPlan(ch.plan); err != nil {
			return err
		}
	}
	return nil
}

func waitForImage(ctx context.Context, sel *viewmodel.Selection, transition time.Duration) {
	deadline := time.NewTimer(2*transition + 100*time.Millisecond)
	defer deadline.Stop()
	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()
	for !sel.State().ImageVisible {
		select {
		case <-ctx.Done():
			return
		case <-deadline.C:
			return
		case <-tick.C:
		}
	}
}
