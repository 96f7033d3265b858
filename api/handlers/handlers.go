package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"poster-studio/copywriter"
	"poster-studio/dto"
	"poster-studio/logger"
	"poster-studio/poster"
	"poster-studio/quota"
	"poster-studio/services"
)

// GeneratePosterHandler godoc
// @Summary      Generate a poster
// @Description  Generate localized marketing copy and render it into a 1080x1080 PNG poster
// @Tags         posters
// @Accept       multipart/form-data
// @Param        name   formData  string  false  "Agent name (config default when empty)"
// @Param        role   formData  string  false  "Agent role (config default when empty)"
// @Param        phone  formData  string  false  "Agent phone (config default when empty)"
// @Param        style  formData  string  false  "Copy style: Standard | Conversation | FactBased"
// @Param        photo  formData  file    true   "Agent photo (JPEG or PNG)"
// @Produce      png
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorDTO
// @Failure      429  {object}  dto.ErrorDTO
// @Failure      500  {object}  dto.ErrorDTO
// @Failure      502  {object}  dto.ErrorDTO
// @Router       /posters [post]
func GeneratePosterHandler(svc *services.PosterService, limiter *quota.GenerationQuotaLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		startedAt := time.Now()

		fileHeader, err := c.FormFile("photo")
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorDTO{Error: "please upload the agent photo"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorDTO{Error: "could not read the uploaded photo"})
			return
		}
		photo, err := io.ReadAll(file)
		file.Close()
		if err != nil || len(photo) == 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorDTO{Error: "could not read the uploaded photo"})
			return
		}

		req := services.PosterRequest{
			Name:  c.PostForm("name"),
			Role:  c.PostForm("role"),
			Phone: c.PostForm("phone"),
			Style: copywriter.ParseStyleMode(c.PostForm("style")),
			Photo: photo,
		}

		if ok, retryAfter := limiter.Reserve(); !ok {
			if retryAfter > 0 {
				c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
				c.JSON(http.StatusTooManyRequests, dto.ErrorDTO{Error: "another generation is still inside its spacing window, retry shortly"})
				return
			}
			c.JSON(http.StatusTooManyRequests, dto.ErrorDTO{Error: "daily generation quota exhausted, try again tomorrow"})
			return
		}

		logger.InfoWithFields("generating poster", logger.Fields{
			"request_id": requestID,
			"style":      string(req.Style),
		})

		result, err := svc.Generate(c.Request.Context(), req)
		if err != nil {
			status := statusForError(err)
			logger.ErrorWithFields("poster generation failed", logger.Fields{
				"request_id": requestID,
				"style":      string(req.Style),
				"status":     status,
				"error":      err.Error(),
			})
			c.JSON(status, dto.ErrorDTO{Error: err.Error()})
			return
		}

		logger.InfoWithFields("poster generated", logger.Fields{
			"request_id":  requestID,
			"style":       string(req.Style),
			"theme":       string(result.Copy.ColorTheme),
			"duration_ms": time.Since(startedAt).Milliseconds(),
			"size_bytes":  len(result.PNG),
		})

		c.Header("Content-Disposition", `attachment; filename="`+result.FileName+`"`)
		c.Data(http.StatusOK, "image/png", result.PNG)
	}
}

// statusForError maps pipeline failures onto HTTP statuses: generation
// and parse problems are the upstream service's fault (502), render
// problems are ours (500).
func statusForError(err error) int {
	var parseErr *copywriter.ParseError
	if errors.As(err, &parseErr) {
		return http.StatusBadGateway
	}
	var renderErr *poster.RenderError
	if errors.As(err, &renderErr) {
		return http.StatusInternalServerError
	}
	// transport-level failure talking to the generation service
	return http.StatusBadGateway
}

// ListStylesHandler godoc
// @Summary      List copy styles
// @Description  List the selectable copy style modes
// @Tags         posters
// @Produce      json
// @Success      200  {array}  dto.StyleDTO
// @Router       /styles [get]
func ListStylesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewStyleDTOs())
	}
}

// HealthHandler reports liveness, plus Mongo health when configured.
func HealthHandler(database *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if database != nil {
			if err := database.RunCommand(c.Request.Context(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
