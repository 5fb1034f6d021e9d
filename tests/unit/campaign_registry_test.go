package unit

import (
	"context"
	"errors"
	"strings"
	"testing"

	campaignregistry "clout/contexts/campaign-bounty/campaign-registry"
	domainerrors "clout/contexts/campaign-bounty/campaign-registry/domain/errors"
	httptransport "clout/contexts/campaign-bounty/campaign-registry/transport/http"
)

func validCampaignRequest() httptransport.CreateCampaignRequest {
	return httptransport.CreateCampaignRequest{
		Title:                "Clip My Launch",
		Description:          "Short clips from the launch stream",
		ImageURL:             "https://cdn.test/banners/launch.png",
		ExternalURL:          "https://youtube.com/watch?v=launch",
		MoneyPerMillionViews: 250,
		ContentTypeTags:      []string{"Clipping"},
		CategoryTags:         []string{"Gaming"},
	}
}

func TestCampaignCreateStartsOpenWithZeroAggregates(t *testing.T) {
	module := campaignregistry.NewInMemoryModule(nil, nil)

	created, err := module.Handler.CreateCampaignHandler(context.Background(), "creator-1", validCampaignRequest())
	if err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}

	campaign := created.Campaign
	if !campaign.Open {
		t.Fatalf("expected new campaign to be open")
	}
	if campaign.Entries != 0 || campaign.TotalViews != 0 || campaign.Prize != 0 || campaign.Paid != 0 {
		t.Fatalf("expected zeroed aggregates, got entries=%d views=%d prize=%v paid=%v",
			campaign.Entries, campaign.TotalViews, campaign.Prize, campaign.Paid)
	}
	if campaign.PayoutTier != "medium" {
		t.Fatalf("expected medium tier for rate 250, got %s", campaign.PayoutTier)
	}
}

func TestCampaignCreateCollectsAllFieldErrors(t *testing.T) {
	module := campaignregistry.NewInMemoryModule(nil, nil)

	req := validCampaignRequest()
	req.Title = "  "
	req.MoneyPerMillionViews = 0
	req.ContentTypeTags = nil

	_, err := module.Handler.CreateCampaignHandler(context.Background(), "creator-1", req)
	if !errors.Is(err, domainerrors.ErrInvalidCampaignInput) {
		t.Fatalf("expected invalid campaign input, got %v", err)
	}

	var fieldErrs domainerrors.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected field errors, got %T", err)
	}
	for _, field := range []string{"title", "money_per_million_views", "content_type_tags"} {
		if _, ok := fieldErrs[field]; !ok {
			t.Fatalf("expected error for %s, got %v", field, fieldErrs)
		}
	}
}

func TestCampaignRejectsUnsupportedTags(t *testing.T) {
	module := campaignregistry.NewInMemoryModule(nil, nil)

	req := validCampaignRequest()
	req.ContentTypeTags = []string{"Podcasting"}
	req.CategoryTags = []string{"Underwater basket weaving"}

	_, err := module.Handler.CreateCampaignHandler(context.Background(), "creator-1", req)
	var fieldErrs domainerrors.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected field errors, got %v", err)
	}
	if _, ok := fieldErrs["content_type_tags"]; !ok {
		t.Fatalf("expected content type error, got %v", fieldErrs)
	}
	if _, ok := fieldErrs["category_tags"]; !ok {
		t.Fatalf("expected category error, got %v", fieldErrs)
	}
}

func TestCampaignMutationsRequireOwner(t *testing.T) {
	module := campaignregistry.NewInMemoryModule(nil, nil)

	created, err := module.Handler.CreateCampaignHandler(context.Background(), "creator-1", validCampaignRequest())
	if err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}
	campaignID := created.Campaign.CampaignID

	update := httptransport.UpdateCampaignRequest{
		Title:                "Hijacked",
		Description:          "not yours",
		MoneyPerMillionViews: 1,
		ContentTypeTags:      []string{"Clipping"},
	}
	if err := module.Handler.UpdateCampaignHandler(context.Background(), "creator-2", campaignID, update); !errors.Is(err, domainerrors.ErrNotCampaignOwner) {
		t.Fatalf("expected not owner on update, got %v", err)
	}
	if err := module.Handler.CloseCampaignHandler(context.Background(), "creator-2", campaignID); !errors.Is(err, domainerrors.ErrNotCampaignOwner) {
		t.Fatalf("expected not owner on close, got %v", err)
	}
}

func TestCampaignCloseAndReopen(t *testing.T) {
	module := campaignregistry.NewInMemoryModule(nil, nil)

	created, err := module.Handler.CreateCampaignHandler(context.Background(), "creator-1", validCampaignRequest())
	if err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}
	campaignID := created.Campaign.CampaignID

	if err := module.Handler.CloseCampaignHandler(context.Background(), "creator-1", campaignID); err != nil {
		t.Fatalf("close campaign failed: %v", err)
	}
	fetched, err := module.Handler.GetCampaignHandler(context.Background(), campaignID)
	if err != nil {
		t.Fatalf("get campaign failed: %v", err)
	}
	if fetched.Campaign.Open {
		t.Fatalf("expected campaign closed")
	}

	openOnly := true
	listed, err := module.Handler.ListCampaignsHandler(context.Background(), "", &openOnly)
	if err != nil {
		t.Fatalf("list campaigns failed: %v", err)
	}
	if len(listed.Items) != 0 {
		t.Fatalf("expected no open campaigns, got %d", len(listed.Items))
	}

	if err := module.Handler.ReopenCampaignHandler(context.Background(), "creator-1", campaignID); err != nil {
		t.Fatalf("reopen campaign failed: %v", err)
	}
	listed, err = module.Handler.ListCampaignsHandler(context.Background(), "", &openOnly)
	if err != nil {
		t.Fatalf("list campaigns failed: %v", err)
	}
	if len(listed.Items) != 1 {
		t.Fatalf("expected one open campaign, got %d", len(listed.Items))
	}
}

func TestCampaignUpdateKeepsBannerWhenOmitted(t *testing.T) {
	module := campaignregistry.NewInMemoryModule(nil, nil)

	created, err := module.Handler.CreateCampaignHandler(context.Background(), "creator-1", validCampaignRequest())
	if err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}
	campaignID := created.Campaign.CampaignID

	update := httptransport.UpdateCampaignRequest{
		Title:                "Clip My Launch v2",
		Description:          "Now with a bigger prize pool",
		MoneyPerMillionViews: 600,
		ContentTypeTags:      []string{"Video content"},
		CategoryTags:         []string{"Technology"},
	}
	if err := module.Handler.UpdateCampaignHandler(context.Background(), "creator-1", campaignID, update); err != nil {
		t.Fatalf("update campaign failed: %v", err)
	}

	fetched, err := module.Handler.GetCampaignHandler(context.Background(), campaignID)
	if err != nil {
		t.Fatalf("get campaign failed: %v", err)
	}
	if fetched.Campaign.ImageURL != created.Campaign.ImageURL {
		t.Fatalf("expected banner to survive update, got %s", fetched.Campaign.ImageURL)
	}
	if fetched.Campaign.PayoutTier != "high" {
		t.Fatalf("expected high tier after rate change, got %s", fetched.Campaign.PayoutTier)
	}
}

func TestCampaignBannerUploadURL(t *testing.T) {
	module := campaignregistry.NewInMemoryModule(nil, nil)

	resp, err := module.Handler.GenerateBannerUploadURLHandler(context.Background(), "creator-1", httptransport.GenerateBannerUploadURLRequest{
		FileName:    "banner.png",
		ContentType: "image/png",
	})
	if err != nil {
		t.Fatalf("banner upload url failed: %v", err)
	}
	if !strings.HasPrefix(resp.UploadURL, "https://storage.test/upload/campaigns/banners/") {
		t.Fatalf("unexpected upload url %s", resp.UploadURL)
	}
	if !strings.HasPrefix(resp.PublicURL, "https://cdn.test/campaigns/banners/") {
		t.Fatalf("unexpected public url %s", resp.PublicURL)
	}
	if !strings.HasSuffix(resp.AssetPath, ".png") {
		t.Fatalf("unexpected asset path %s", resp.AssetPath)
	}

	_, err = module.Handler.GenerateBannerUploadURLHandler(context.Background(), "creator-1", httptransport.GenerateBannerUploadURLRequest{
		FileName:    "banner.exe",
		ContentType: "application/octet-stream",
	})
	if !errors.Is(err, domainerrors.ErrInvalidBannerUpload) {
		t.Fatalf("expected invalid banner upload, got %v", err)
	}
}
