package api

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/ssargent/charcard/pkg/card"
	"github.com/ssargent/charcard/pkg/codec"
)

// Server holds the API server state
type Server struct {
	codec   ICardCodec
	config  ServerConfig
	metrics *Metrics
	logger  logrus.FieldLogger
}

// NewServer creates a new API server
func NewServer(cardCodec ICardCodec, config ServerConfig, metrics *Metrics, logger logrus.FieldLogger) *Server {
	if config.MaxImageBytes <= 0 {
		config.MaxImageBytes = defaultMaxImageBytes
	}
	return &Server{
		codec:   cardCodec,
		config:  config,
		metrics: metrics,
		logger:  logger,
	}
}

// handleHealth godoc
//
//	@Summary		Health check
//	@Description	Get the health status of the API
//	@Tags			health
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
//	@Security		ApiKeyAuth
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.metrics != nil {
		s.metrics.RecordHealthCheck(true)
	}
	sendSuccess(w, map[string]string{
		"status":  "healthy",
		"service": "charcard",
	})
}

// handleInspect godoc
//
//	@Summary		Inspect an image
//	@Description	List the chunks of an image with their checksum status
//	@Tags			cards
//	@Accept			octet-stream
//	@Produce		json
//	@Param			image	body		string	true	"Image bytes"
//	@Success		200		{object}	InspectResponse
//	@Failure		413		{object}	APIResponse
//	@Failure		422		{object}	APIResponse
//	@Router			/cards/inspect [post]
//	@Security		ApiKeyAuth
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readImage(w, r)
	if !ok {
		return
	}

	start := time.Now()
	chunks, err := s.codec.Inspect(data)
	if err != nil {
		s.recordCodec("inspect", resultFor(err), len(data), start)
		s.sendCodecError(w, err)
		return
	}

	resp := InspectResponse{
		Size:   len(data),
		Chunks: make([]ChunkInfo, 0, len(chunks)),
	}
	for _, c := range chunks {
		info := ChunkInfo{
			Offset:   c.Offset,
			Type:     c.Type,
			Length:   c.Length,
			CRC:      fmt.Sprintf("%08x", c.CRC),
			CRCValid: c.Validate() == nil,
		}
		if rec, ok := c.TextRecord(); ok {
			info.Keyword = rec.Keyword
			if rec.Keyword == card.Keyword {
				resp.HasProfile = true
			}
		}
		resp.Chunks = append(resp.Chunks, info)
	}
	s.recordCodec("inspect", resultSuccess, len(data), start)

	sendSuccess(w, resp)
}

// handleDecode godoc
//
//	@Summary		Decode an embedded profile
//	@Description	Extract the character profile embedded in an image. found is false when the image carries none.
//	@Tags			cards
//	@Accept			octet-stream
//	@Produce		json
//	@Param			image	body		string	true	"Image bytes"
//	@Success		200		{object}	DecodeResponse
//	@Failure		413		{object}	APIResponse
//	@Failure		422		{object}	APIResponse
//	@Router			/cards/decode [post]
//	@Security		ApiKeyAuth
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readImage(w, r)
	if !ok {
		return
	}

	start := time.Now()
	profile, found, err := s.codec.DecodeProfile(data)
	if err != nil {
		s.recordCodec("decode", resultFor(err), len(data), start)
		s.sendCodecError(w, err)
		return
	}
	if !found {
		s.recordCodec("decode", resultAbsent, len(data), start)
		sendSuccess(w, DecodeResponse{Found: false})
		return
	}
	s.recordCodec("decode", resultSuccess, len(data), start)

	settings := profile.Settings()
	sendSuccess(w, DecodeResponse{
		Found:    true,
		Profile:  profile,
		Settings: &settings,
	})
}

// handleEncode godoc
//
//	@Summary		Embed a profile
//	@Description	Return a copy of the image with the profile embedded. When profile is omitted it is built from settings.
//	@Tags			cards
//	@Accept			json
//	@Produce		png
//	@Param			request	body		EncodeRequest	true	"Image and profile"
//	@Success		200		{file}		binary
//	@Failure		400		{object}	APIResponse
//	@Failure		413		{object}	APIResponse
//	@Failure		422		{object}	APIResponse
//	@Router			/cards/encode [post]
//	@Security		ApiKeyAuth
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	// base64 inflates the image by a third
	body, ok := s.readBody(w, r, s.config.MaxImageBytes/3*4+64*1024)
	if !ok {
		return
	}

	var req EncodeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		sendError(w, "Invalid JSON request", http.StatusBadRequest)
		return
	}
	if len(req.Image) == 0 {
		sendError(w, "image is required", http.StatusBadRequest)
		return
	}
	if int64(len(req.Image)) > s.config.MaxImageBytes {
		sendError(w, "image exceeds the size limit", http.StatusRequestEntityTooLarge)
		return
	}

	profile := req.Profile
	if profile == nil {
		if req.Settings == nil {
			sendError(w, "profile or settings is required", http.StatusBadRequest)
			return
		}
		profile = card.ProfileFromSettings(*req.Settings, s.config.Export)
	}

	start := time.Now()
	out, err := s.codec.EncodeProfileInto(req.Image, profile)
	if err != nil {
		s.recordCodec("encode", resultFor(err), len(req.Image), start)
		s.sendCodecError(w, err)
		return
	}
	s.recordCodec("encode", resultSuccess, len(req.Image), start)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": card.ExportFilename(profile.Data.Name),
	}))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		s.logger.WithError(err).Warn("failed to write encoded image")
	}
}

// readImage reads a raw image body bounded by the configured limit
func (s *Server) readImage(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	data, ok := s.readBody(w, r, s.config.MaxImageBytes)
	if !ok {
		return nil, false
	}
	if len(data) == 0 {
		sendError(w, "request body is empty", http.StatusBadRequest)
		return nil, false
	}
	return data, true
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sendError(w, "image exceeds the size limit", http.StatusRequestEntityTooLarge)
			return nil, false
		}
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return nil, false
	}
	return data, true
}

// sendCodecError maps codec and card error kinds to HTTP statuses
func (s *Server) sendCodecError(w http.ResponseWriter, err error) {
	switch {
	case isContainerError(err):
		sendError(w, "not a valid image: "+err.Error(), http.StatusUnprocessableEntity)
	case card.ErrDecode.Is(err):
		sendError(w, err.Error(), http.StatusUnprocessableEntity)
	case card.ErrEncode.Is(err):
		sendError(w, err.Error(), http.StatusBadRequest)
	default:
		s.logger.WithError(err).Error("card codec failed")
		sendError(w, "internal error", http.StatusInternalServerError)
	}
}

func (s *Server) recordCodec(operation, result string, size int, start time.Time) {
	if s.metrics != nil {
		s.metrics.RecordCodecOperation(operation, result, size, time.Since(start))
	}
}

func isContainerError(err error) bool {
	return codec.ErrInvalidSignature.Is(err) ||
		codec.ErrTruncatedChunk.Is(err) ||
		codec.ErrMissingTerminalMarker.Is(err) ||
		codec.ErrInvalidChunkType.Is(err) ||
		codec.ErrChunkTooLarge.Is(err)
}

func resultFor(err error) string {
	switch {
	case isContainerError(err):
		return resultInvalidImage
	case card.ErrDecode.Is(err):
		return resultCorrupted
	default:
		return resultError
	}
}
