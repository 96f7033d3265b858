package services

import (
	"context"
	"html/template"

	"poster-studio/assets"
	"poster-studio/colors"
	"poster-studio/config"
	"poster-studio/copywriter"
	"poster-studio/logger"
	"poster-studio/models"
	"poster-studio/poster"
	"poster-studio/repositories"
)

// Text color fallbacks used when the model picks a name outside the
// color table.
const (
	headlineFallback = "#0f172a"
	bodyFallback     = "#111827"
	ctaFallback      = "#b91c1c"
)

// PosterRequest is the operator's input for one poster.
type PosterRequest struct {
	Name  string
	Role  string
	Phone string
	Style copywriter.StyleMode
	Photo []byte
}

// RenderedPoster is the final artifact handed back for download. It is
// never persisted.
type RenderedPoster struct {
	PNG      []byte
	FileName string
	Copy     *copywriter.PosterCopy
}

// PosterService sequences copy generation, color resolution, templating
// and rasterization for one request at a time.
type PosterService struct {
	agent   config.AgentConfig
	client  *copywriter.Client
	fonts   *assets.FontPack
	logRepo *repositories.GenerationLogRepository // nil disables call logging
}

func NewPosterService(cfg *config.AppConfig, client *copywriter.Client, fonts *assets.FontPack, logRepo *repositories.GenerationLogRepository) *PosterService {
	return &PosterService{
		agent:   cfg.Agent,
		client:  client,
		fonts:   fonts,
		logRepo: logRepo,
	}
}

// Generate runs the whole pipeline synchronously. Any failure is
// returned to the caller; nothing is retried here.
func (s *PosterService) Generate(ctx context.Context, req PosterRequest) (*RenderedPoster, error) {
	if req.Name == "" {
		req.Name = s.agent.Name
	}
	if req.Role == "" {
		req.Role = s.agent.Role
	}
	if req.Phone == "" {
		req.Phone = s.agent.Phone
	}

	copySpec, callLog, err := s.client.GenerateCopy(ctx, req.Style)
	s.recordCall(ctx, callLog, err)
	if err != nil {
		return nil, err
	}

	top, bottom, footer := colors.ThemeColors(copySpec.ColorTheme)

	params := poster.TemplateParams{
		Width:        poster.Width,
		Height:       poster.Height,
		FooterHeight: poster.FooterHeight,

		TopColor:      template.CSS(top),
		BottomColor:   template.CSS(bottom),
		FooterColor:   template.CSS(footer),
		HeadlineColor: template.CSS(colors.FromName(copySpec.TextColors.Headline, headlineFallback)),
		BodyColor:     template.CSS(colors.FromName(copySpec.TextColors.Body, bodyFallback)),
		CTAColor:      template.CSS(colors.FromName(copySpec.TextColors.CTA, ctaFallback)),

		Headline:      copySpec.Headline,
		Subheadline:   copySpec.Subheadline,
		BodyParagraph: copySpec.BodyParagraph,
		BulletPoints:  []string(copySpec.BulletPoints),
		CTALine:       copySpec.CTALine,

		AgentName:  req.Name,
		AgentRole:  req.Role,
		AgentPhone: req.Phone,

		PhotoDataURL:       template.URL(assets.PhotoDataURL(req.Photo)),
		RegularFontDataURL: template.URL(s.fonts.RegularDataURL),
		BoldFontDataURL:    template.URL(s.fonts.BoldDataURL),
	}

	doc, err := poster.BuildHTML(params)
	if err != nil {
		return nil, err
	}

	png, err := poster.RenderPNG(ctx, doc, poster.Width, poster.Height)
	if err != nil {
		return nil, err
	}

	return &RenderedPoster{
		PNG:      png,
		FileName: poster.DownloadFileName,
		Copy:     copySpec,
	}, nil
}

// recordCall writes the generation log when Mongo is configured.
// Logging failures never fail the request.
func (s *PosterService) recordCall(ctx context.Context, callLog *copywriter.CallLog, genErr error) {
	if s.logRepo == nil || callLog == nil {
		return
	}

	if _, err := s.logRepo.Insert(ctx, newGenerationLog(callLog, genErr)); err != nil {
		logger.Log.Warnf("failed to insert generation log: %v", err)
	}
}

// newGenerationLog maps a call log onto the stored document. Both
// timestamps come straight from the call; nothing is reconstructed.
func newGenerationLog(callLog *copywriter.CallLog, genErr error) models.GenerationLog {
	entry := models.GenerationLog{
		Style:           string(callLog.Style),
		ModelName:       callLog.ModelName,
		ModelVersion:    callLog.ModelVersion,
		InputTokens:     callLog.TokenUsage.InputTokens,
		OutputTokens:    callLog.TokenUsage.OutputTokens,
		TotalTokens:     callLog.TokenUsage.TotalTokens,
		DurationMs:      callLog.LatencyMs,
		Success:         genErr == nil,
		ResponseExcerpt: truncate(callLog.Response, 200),
		RequestedAt:     callLog.RequestedAt,
		CompletedAt:     callLog.GeneratedAt,
	}
	if genErr != nil {
		msg := genErr.Error()
		entry.ErrorMessage = &msg
	}
	return entry
}

// truncate returns s truncated to max runes.
func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}
