package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/contentsync/internal/checksum"
	"github.com/vk/contentsync/internal/ctxlog"
	"github.com/vk/contentsync/internal/peer"
)

// Summary returns each store's aggregate checksum keyed by content kind.
// This is the unit of comparison between peers: the kinds and their sums.
func (a *App) Summary(ctx context.Context) peer.Summary {
	return peer.Summary{
		a.hulls.Name(): a.hulls.CheckSum(ctx),
		a.parts.Name(): a.parts.CheckSum(ctx),
	}
}

// TotalCheckSum folds the named per-kind sums into the single number that
// identifies the whole content tree.
func (a *App) TotalCheckSum(ctx context.Context) uint32 {
	return checksum.Map(0, a.Summary(ctx), checksum.String, checksum.Unsigned[uint32])
}

// Run executes the main application logic: resolve the content, report the
// checksums, and verify against a peer when one is configured.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	// Surface a parse failure directly; an empty store is a valid state for
	// library consumers, but for the CLI it would just misreport content.
	if _, err := a.load.Wait(ctx); err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	hullCount := a.hulls.Size(ctx)
	partCount := a.parts.Size(ctx)
	summary := a.Summary(ctx)
	total := a.TotalCheckSum(ctx)
	a.logger.Info("Content resolved.", "hulls", hullCount, "parts", partCount, "checksum", total)

	fmt.Fprintf(a.outW, "hulls: %d records, checksum %d\n", hullCount, summary[a.hulls.Name()])
	fmt.Fprintf(a.outW, "parts: %d records, checksum %d\n", partCount, summary[a.parts.Name()])
	fmt.Fprintf(a.outW, "content checksum: %d\n", total)

	if a.config.VerifyURL == "" {
		a.logger.Debug("No peer configured, verification skipped.")
		return nil
	}

	theirs, err := peer.Exchange(ctx, peer.Options{
		URL:                a.config.VerifyURL,
		Timeout:            a.config.VerifyTimeout,
		InsecureSkipVerify: a.config.InsecureSkipVerify,
	}, summary)
	if err != nil {
		return fmt.Errorf("checksum exchange with peer failed: %w", err)
	}

	if diff := peer.Diff(summary, theirs); len(diff) > 0 {
		for _, kind := range diff {
			a.logger.Error("Content checksum mismatch.",
				"kind", kind, "ours", summary[kind], "peer", theirs[kind])
		}
		return fmt.Errorf("content out of sync with peer: %s", strings.Join(diff, ", "))
	}

	a.logger.Info("Content verified against peer.", "kinds", len(summary))
	fmt.Fprintln(a.outW, "content verified: checksums match peer")
	return nil
}
