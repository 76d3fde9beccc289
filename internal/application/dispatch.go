package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pontbot/internal/domain"
	"pontbot/internal/domain/entities"
	"pontbot/internal/ports/output"
	"pontbot/pkg/ratelimit"
)

// DispatchConfig carries the relay knobs the engine needs.
type DispatchConfig struct {
	Pair       entities.LanguagePair
	Locale     string
	Confidence float64 // seuil sous lequel une détection est ignorée
	ShortText  int     // longueur (runes) sous laquelle le seuil est contourné
}

// DispatchService relays one chat message end to end: classify, route,
// translate every target concurrently, compose, deliver. A failed
// branch never cancels its siblings and a failed dispatch never posts
// anything to the chat.
type DispatchService struct {
	cfg        DispatchConfig
	classifier *Classifier
	translator output.Translator
	limiter    *ratelimit.Limiter
	messenger  output.Messenger
	stats      *Stats
	auditor    output.DispatchAuditor
	texts      output.T
	log        *logrus.Logger
}

func NewDispatchService(
	cfg DispatchConfig,
	classifier *Classifier,
	translator output.Translator,
	limiter *ratelimit.Limiter,
	messenger output.Messenger,
	stats *Stats,
	auditor output.DispatchAuditor,
	texts output.T,
	log *logrus.Logger,
) *DispatchService {
	if auditor == nil {
		auditor = nopAuditor{}
	}
	if log == nil {
		log = logrus.New()
	}
	return &DispatchService{
		cfg:        cfg,
		classifier: classifier,
		translator: translator,
		limiter:    limiter,
		messenger:  messenger,
		stats:      stats,
		auditor:    auditor,
		texts:      texts,
		log:        log,
	}
}

// Dispatch runs the full relay pipeline for one inbound message.
// Messages filtered out (empty, command, low confidence) return nil;
// a nil return after translation means the reply was sent. Errors are
// for the caller's logs only, nothing is ever posted about them.
func (s *DispatchService) Dispatch(ctx context.Context, msg *entities.Message) error {
	s.stats.MessageSeen()

	reqID := newRequestID()
	log := s.log.WithFields(logrus.Fields{
		"request": reqID,
		"chat":    msg.ChatID,
		"sender":  msg.SenderID,
	})

	if msg.IsEmpty() || msg.IsCommand() {
		log.Debug("message non relayable, classification sautée")
		return nil
	}
	text := strings.TrimSpace(msg.Text)

	det, err := s.classifier.Classify(ctx, text)
	if err != nil {
		s.stats.Error()
		log.WithError(err).Warn("classification échouée")
		s.audit(ctx, log, reqID, msg, entities.RoutingDecision{}, auditTally{errors: 1})
		return err
	}
	log = log.WithFields(logrus.Fields{"lang": det.Base, "confidence": det.Confidence})

	skipped := entities.RoutingDecision{
		Source: entities.Language{Code: det.Code, Base: det.Base},
		Skip:   true,
	}
	if det.Confidence < s.cfg.Confidence && !s.shortAnchorText(text, det) {
		log.Debug("confiance insuffisante, message ignoré")
		s.audit(ctx, log, reqID, msg, skipped, auditTally{})
		return nil
	}

	decision := domain.Route(s.cfg.Pair, det.Base)
	if decision.Skip {
		s.audit(ctx, log, reqID, msg, decision, auditTally{})
		return nil
	}

	results := s.translateAll(ctx, text, decision.Targets)

	var (
		lines []string
		tally auditTally
	)
	for _, r := range results {
		switch {
		case r.Err == nil:
			s.stats.Translated(r.Target.Base)
			tally.translated++
			tally.succeeded = append(tally.succeeded, r.Target.Base)
			lines = append(lines, s.replyLine(decision.Source, r))
		case errors.Is(r.Err, domain.ErrRateLimited):
			s.stats.RateLimited()
			tally.rateLimited++
			log.WithError(r.Err).WithField("target", r.Target.Base).Warn("branche refusée par le limiteur")
		default:
			s.stats.Error()
			tally.errors++
			log.WithError(r.Err).WithField("target", r.Target.Base).Warn("branche de traduction échouée")
		}
	}

	if len(lines) == 0 {
		log.Warn("aucune traduction aboutie, pas de réponse")
		s.audit(ctx, log, reqID, msg, decision, tally)
		return domain.ErrNoTranslations
	}

	reply := strings.Join(lines, "\n\n")
	if err := s.messenger.Send(ctx, msg.ChatID, msg.ID, reply); err != nil {
		s.stats.Error()
		tally.errors++
		log.WithError(err).Error("envoi de la réponse échoué")
		s.audit(ctx, log, reqID, msg, decision, tally)
		return fmt.Errorf("envoi de la réponse: %w", err)
	}

	tally.delivered = true
	log.WithField("translations", tally.translated).Info("message relayé")
	s.audit(ctx, log, reqID, msg, decision, tally)
	return nil
}

// translateAll runs one goroutine per target and waits for all of
// them. Branches are independent: a slow or failed target neither
// cancels nor delays the error handling of its siblings, and results
// come back in target order.
func (s *DispatchService) translateAll(ctx context.Context, text string, targets []entities.Language) []entities.TranslationResult {
	results := make([]entities.TranslationResult, len(targets))
	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(i int, target entities.Language) {
			defer wg.Done()
			results[i] = s.translateOne(ctx, text, target)
		}(i, target)
	}
	wg.Wait()
	return results
}

func (s *DispatchService) translateOne(ctx context.Context, text string, target entities.Language) entities.TranslationResult {
	release, err := s.limiter.Acquire(ctx)
	if err != nil {
		return entities.TranslationResult{Target: target, Err: err}
	}
	defer release()

	translated, err := s.translator.Translate(ctx, text, target.Code)
	if err != nil {
		return entities.TranslationResult{Target: target, Err: fmt.Errorf("%w: %w", domain.ErrTranslationFailed, err)}
	}
	return entities.TranslationResult{Target: target, Text: translated}
}

// shortAnchorText is the confidence-gate exception: very short text in
// one of the anchor languages is relayed even when the detector is
// unsure, because greetings and interjections rarely classify well.
func (s *DispatchService) shortAnchorText(text string, det entities.Detection) bool {
	return utf8.RuneCountInString(text) <= s.cfg.ShortText && s.cfg.Pair.Matches(det.Base)
}

func (s *DispatchService) replyLine(source entities.Language, r entities.TranslationResult) string {
	header := s.texts.T(s.cfg.Locale, "reply.header", map[string]any{
		"Source": source.DisplayName(),
		"Target": r.Target.DisplayName(),
		"Flag":   r.Target.Flag,
	})
	return strings.TrimRight(header, " ") + "\n" + r.Text
}

type auditTally struct {
	delivered   bool
	translated  int
	errors      int
	rateLimited int
	succeeded   []string
}

// audit hands the terminal outcome to the auditor port. Auditor
// failures are logged and swallowed, the chat flow never depends on
// them.
func (s *DispatchService) audit(ctx context.Context, log *logrus.Entry, reqID string, msg *entities.Message, decision entities.RoutingDecision, tally auditTally) {
	targets := make([]string, 0, len(decision.Targets))
	for _, t := range decision.Targets {
		targets = append(targets, t.Base)
	}
	rec := &entities.DispatchRecord{
		RequestID:   reqID,
		ChatID:      msg.ChatID,
		SenderID:    msg.SenderID,
		SourceLang:  decision.Source.Base,
		Targets:     targets,
		Succeeded:   tally.succeeded,
		Delivered:   tally.delivered,
		Translated:  tally.translated,
		Errors:      tally.errors,
		RateLimited: tally.rateLimited,
		At:          time.Now().UTC(),
	}
	if err := s.auditor.RecordDispatch(ctx, rec); err != nil {
		log.WithError(err).Warn("journalisation du relais échouée")
	}
}

func newRequestID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

type nopAuditor struct{}

func (nopAuditor) RecordDispatch(context.Context, *entities.DispatchRecord) error { return nil }
