package main

import (
	"encoding/json"
	"log"
	"sync/atomic"

	"github.com/planmetric/roomplan-engine/internal/protocol"
	"github.com/planmetric/roomplan-engine/internal/ws"
)

// BroadcasterImpl implements Broadcaster using the WebSocket hub
type BroadcasterImpl struct {
	hub      *ws.Hub
	sequence SequenceGenerator
}

func NewBroadcaster(hub *ws.Hub, sequence SequenceGenerator) *BroadcasterImpl {
	return &BroadcasterImpl{
		hub:      hub,
		sequence: sequence,
	}
}

func (b *BroadcasterImpl) BroadcastEvent(eventType string, payload any) {
	seq := b.sequence.Next()
	envelope := protocol.PatchEnvelope{
		Sequence: seq,
		EventID:  0,
		Type:     eventType,
		Payload:  payload,
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		log.Printf("failed to marshal %s: %v", eventType, err)
		return
	}
	b.hub.Broadcast(data)
}

// LoggerImpl implements Logger using the standard log package
type LoggerImpl struct{}

func NewLogger() *LoggerImpl {
	return &LoggerImpl{}
}

func (l *LoggerImpl) Printf(format string, v ...any) {
	log.Printf(format, v...)
}

// SequenceGeneratorImpl implements SequenceGenerator using an atomic counter
type SequenceGeneratorImpl struct {
	counter uint64
}

func NewSequenceGenerator() *SequenceGeneratorImpl {
	return &SequenceGeneratorImpl{}
}

func (sg *SequenceGeneratorImpl) Next() uint64 {
	return atomic.AddUint64(&sg.counter, 1)
}

func (sg *SequenceGeneratorImpl) Current() uint64 {
	return atomic.LoadUint64(&sg.counter)
}

// IntentHandlers routes decoded intents to the engine and broadcasts
// the resulting patches.
type IntentHandlers struct {
	engine      PlanEngine
	broadcaster Broadcaster
	logger      Logger
}

func NewIntentHandlers(engine PlanEngine, broadcaster Broadcaster, logger Logger) *IntentHandlers {
	return &IntentHandlers{
		engine:      engine,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

func (h *IntentHandlers) HandleRequestRebuild(req protocol.RequestRebuild) error {
	result, err := h.engine.ProcessRebuild(req)
	if err != nil {
		h.logger.Printf("rebuild failed: %v", err)
		return err
	}

	if result.RoomsComputed != nil {
		h.broadcaster.BroadcastEvent("RoomsComputed", *result.RoomsComputed)
	}

	return nil
}

func (h *IntentHandlers) HandleRequestLocate(req protocol.RequestLocate) error {
	result, err := h.engine.ProcessLocate(req)
	if err != nil {
		h.logger.Printf("locate failed: %v", err)
		return err
	}

	if result.RoomLocated != nil {
		h.broadcaster.BroadcastEvent("RoomLocated", *result.RoomLocated)
	}

	return nil
}

func (h *IntentHandlers) HandleWebSocketMessage(data []byte) error {
	var env protocol.IntentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	switch env.Type {
	case "RequestRebuild":
		var req protocol.RequestRebuild
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return err
		}
		return h.HandleRequestRebuild(req)

	case "RequestLocate":
		var req protocol.RequestLocate
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return err
		}
		return h.HandleRequestLocate(req)

	default:
		h.logger.Printf("Unknown message type: %s", env.Type)
		return nil
	}
}
