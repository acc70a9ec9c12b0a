package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/habrdigest/habrdigest/pkg/domain"
)

// topicJSON is the API representation of a topic
type topicJSON struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

// subscriberJSON is the API representation of a subscriber
type subscriberJSON struct {
	ID       int64  `json:"id"`
	ChatID   int64  `json:"chat_id"`
	Username string `json:"username,omitempty"`
	Active   bool   `json:"active"`
	Created  bool   `json:"created"` // true when this request registered the subscriber
}

// subscriptionJSON is the API representation of a subscription
type subscriptionJSON struct {
	ID              int64      `json:"id"`
	SubscriberID    int64      `json:"subscriber_id"`
	TopicID         int64      `json:"topic_id"`
	FrequencyHours  int        `json:"frequency_hours"`
	Active          bool       `json:"active"`
	LastDeliveredAt *time.Time `json:"last_delivered_at,omitempty"`
}

// runJSON is the API representation of an ingestion run
type runJSON struct {
	ID          int64      `json:"id"`
	Status      string     `json:"status"`
	Found       int        `json:"articles_found"`
	Processed   int        `json:"articles_processed"`
	Error       string     `json:"error,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func toTopicJSON(t *domain.Topic) topicJSON {
	return topicJSON{ID: t.ID, Name: t.Name, Slug: t.Slug, Description: t.Description, Active: t.Active}
}

func toSubscriptionJSON(s *domain.Subscription) subscriptionJSON {
	return subscriptionJSON{
		ID:              s.ID,
		SubscriberID:    s.SubscriberID,
		TopicID:         s.TopicID,
		FrequencyHours:  s.FrequencyHours,
		Active:          s.Active,
		LastDeliveredAt: s.LastDeliveredAt,
	}
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// statsHandler returns store-wide counters
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.GetStats(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get stats: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

// listTopicsHandler returns active topics, or all with ?all=true
func (s *Server) listTopicsHandler(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("all") != "true"
	topics, err := s.svc.GetTopics(r.Context(), activeOnly)
	if err != nil {
		lgr.Printf("[ERROR] failed to get topics: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	resp := make([]topicJSON, len(topics))
	for i, t := range topics {
		resp[i] = toTopicJSON(t)
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// createTopicHandler creates a new topic
func (s *Server) createTopicHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		renderError(w, r, fmt.Errorf("topic name is required"), http.StatusBadRequest)
		return
	}

	topic := &domain.Topic{Name: req.Name, Description: req.Description}
	if err := s.svc.CreateTopic(r.Context(), topic); err != nil {
		renderError(w, r, err, errToStatus(err))
		return
	}
	renderJSON(w, r, http.StatusCreated, toTopicJSON(topic))
}

// enableTopicHandler activates a topic
func (s *Server) enableTopicHandler(w http.ResponseWriter, r *http.Request) {
	s.updateTopicStatus(w, r, true)
}

// disableTopicHandler deactivates a topic
func (s *Server) disableTopicHandler(w http.ResponseWriter, r *http.Request) {
	s.updateTopicStatus(w, r, false)
}

func (s *Server) updateTopicStatus(w http.ResponseWriter, r *http.Request, active bool) {
	id, err := pathID(r, "id")
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid topic ID"), http.StatusBadRequest)
		return
	}

	if err := s.svc.UpdateTopicStatus(r.Context(), id, active); err != nil {
		renderError(w, r, err, errToStatus(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]bool{"active": active})
}

// registerSubscriberHandler registers a subscriber by chat identity,
// idempotent for an already known chat. A welcome message goes out on
// first registration only.
func (s *Server) registerSubscriberHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ChatID    int64  `json:"chat_id"`
		Username  string `json:"username"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.ChatID == 0 {
		renderError(w, r, fmt.Errorf("chat_id is required"), http.StatusBadRequest)
		return
	}

	sub := &domain.Subscriber{ChatID: req.ChatID, Username: req.Username, FirstName: req.FirstName, LastName: req.LastName}
	registered, created, err := s.svc.EnsureSubscriber(r.Context(), sub)
	if err != nil {
		renderError(w, r, err, errToStatus(err))
		return
	}

	if created {
		// welcome is best-effort, detached from the request lifetime
		go s.digester.SendWelcome(context.Background(), registered.ChatID)
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	renderJSON(w, r, code, subscriberJSON{
		ID:       registered.ID,
		ChatID:   registered.ChatID,
		Username: registered.Username,
		Active:   registered.Active,
		Created:  created,
	})
}

// deactivateSubscriberHandler deactivates a subscriber and their subscriptions
func (s *Server) deactivateSubscriberHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid subscriber ID"), http.StatusBadRequest)
		return
	}

	if err := s.svc.Deactivate(r.Context(), id); err != nil {
		renderError(w, r, err, errToStatus(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listSubscriptionsHandler returns active subscriptions of a subscriber
func (s *Server) listSubscriptionsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid subscriber ID"), http.StatusBadRequest)
		return
	}

	subs, err := s.svc.GetActiveSubscriptions(r.Context(), id)
	if err != nil {
		renderError(w, r, err, errToStatus(err))
		return
	}

	resp := make([]subscriptionJSON, len(subs))
	for i, sub := range subs {
		resp[i] = toSubscriptionJSON(sub)
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// subscribeHandler creates a subscription for a subscriber
func (s *Server) subscribeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid subscriber ID"), http.StatusBadRequest)
		return
	}

	var req struct {
		TopicID        int64 `json:"topic_id"`
		FrequencyHours int   `json:"frequency_hours"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	sub, err := s.svc.Subscribe(r.Context(), id, req.TopicID, req.FrequencyHours)
	if err != nil {
		renderError(w, r, err, errToStatus(err))
		return
	}
	renderJSON(w, r, http.StatusCreated, toSubscriptionJSON(sub))
}

// unsubscribeHandler deactivates a subscription
func (s *Server) unsubscribeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid subscriber ID"), http.StatusBadRequest)
		return
	}
	topicID, err := pathID(r, "topic")
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid topic ID"), http.StatusBadRequest)
		return
	}

	if err := s.svc.Unsubscribe(r.Context(), id, topicID); err != nil {
		renderError(w, r, err, errToStatus(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// sendDigestHandler triggers an immediate digest for one subscription
func (s *Server) sendDigestHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid subscriber ID"), http.StatusBadRequest)
		return
	}
	topicID, err := pathID(r, "topic")
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid topic ID"), http.StatusBadRequest)
		return
	}

	if err := s.digester.SendDigest(r.Context(), id, topicID); err != nil {
		lgr.Printf("[ERROR] manual digest for subscriber %d topic %d failed: %v", id, topicID, err)
		renderError(w, r, err, errToStatus(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "sent"})
}

// listRunsHandler returns recent ingestion runs
func (s *Server) listRunsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	runs, err := s.svc.GetRecentRuns(r.Context(), limit)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	resp := make([]runJSON, len(runs))
	for i, run := range runs {
		resp[i] = runJSON{
			ID:          run.ID,
			Status:      run.Status,
			Found:       run.ArticlesFound,
			Processed:   run.ArticlesProcessed,
			Error:       run.Error,
			StartedAt:   run.StartedAt,
			CompletedAt: run.FinishedAt,
		}
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// triggerDigestHandler runs a delivery tick synchronously and returns its stats
func (s *Server) triggerDigestHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.scheduler.DeliverNow(r.Context())
	if err != nil {
		renderError(w, r, err, errToStatus(err))
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

// triggerIngestHandler starts an ingestion run in the background, detached
// from the request so a slow scrape doesn't hold the connection
func (s *Server) triggerIngestHandler(w http.ResponseWriter, r *http.Request) {
	go func() {
		if err := s.scheduler.IngestNow(context.Background()); err != nil {
			lgr.Printf("[ERROR] manual ingestion failed: %v", err)
		}
	}()
	renderJSON(w, r, http.StatusAccepted, map[string]string{"result": "ingestion started"})
}

// triggerSummarizeHandler drains one summarization batch
func (s *Server) triggerSummarizeHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.scheduler.SummarizeNow(r.Context()); err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "ok"})
}

// pathID parses a numeric path value
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}
