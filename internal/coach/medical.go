package coach

import (
	"context"
	"fmt"
	"strings"

	"vitalog/internal/llm"
	"vitalog/internal/util/jsonutil"
	"vitalog/internal/wellness"
)

// TopicInfo is a health-topic explanation with its citation sources.
type TopicInfo struct {
	Content string       `json:"content"`
	Sources []llm.Source `json:"sources"`
}

// Prescription is the name/dosage pair extracted from a prescription
// image.
type Prescription struct {
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
}

// AppointmentSlot is one suggested booking candidate.
type AppointmentSlot struct {
	Doctor    string `json:"doctor"`
	Specialty string `json:"specialty"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// MedicationInfo returns a short plain-language description of a
// medication. Results are cached by name.
func (s *Service) MedicationInfo(ctx context.Context, name string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if cached, ok := s.medInfo.Get(key); ok {
		return cached, nil
	}
	resp, err := s.generate(ctx, "medication_info", llm.Request{
		Text: fmt.Sprintf("Provide a brief, easy-to-understand description (around 50-70 words) for the medication %q. Focus on its primary use and general purpose. Do not provide dosage information or medical advice.", name),
	})
	if err != nil {
		return "", err
	}
	s.medInfo.Add(key, resp.Text)
	return resp.Text, nil
}

// HealthTopic explains a health topic for a layperson, with search
// grounding so the answer carries citation sources. Results are cached by
// topic.
func (s *Service) HealthTopic(ctx context.Context, topic string) (TopicInfo, error) {
	key := strings.ToLower(strings.TrimSpace(topic))
	if cached, ok := s.topics.Get(key); ok {
		return cached, nil
	}
	resp, err := s.generate(ctx, "health_topic", llm.Request{
		Text:   fmt.Sprintf("Provide a clear and concise explanation of the health topic: %q. The explanation should be easy for a layperson to understand. Cover the key aspects, such as what it is, its importance or effects, and general wellness tips related to it. Structure the response with paragraphs.", topic),
		Search: true,
	})
	if err != nil {
		return TopicInfo{}, err
	}
	info := TopicInfo{Content: resp.Text, Sources: resp.Sources}
	s.topics.Add(key, info)
	return info, nil
}

// ParsePrescription extracts the medication name and dosage from a
// prescription image.
func (s *Service) ParsePrescription(ctx context.Context, media llm.Blob) (Prescription, error) {
	const feature = "parse_prescription"
	if len(media.Data) == 0 {
		return Prescription{}, responseErr(feature, fmt.Errorf("no media supplied"))
	}
	resp, err := s.generate(ctx, feature, llm.Request{
		Text:   "Analyze this image of a prescription. Extract the medication name and the dosage (e.g., 500mg, 1 tablet). Return it as JSON with keys 'name' and 'dosage'. If you cannot find the information, return empty strings.",
		Media:  &media,
		Schema: prescriptionSchema(),
	})
	if err != nil {
		return Prescription{}, err
	}

	var raw struct {
		Name   *string `json:"name"`
		Dosage *string `json:"dosage"`
	}
	if err := jsonutil.UnmarshalFlex([]byte(resp.Text), &raw); err != nil {
		return Prescription{}, responseErr(feature, err)
	}
	if raw.Name == nil {
		return Prescription{}, missingField(feature, "name")
	}
	if raw.Dosage == nil {
		return Prescription{}, missingField(feature, "dosage")
	}
	return Prescription{Name: *raw.Name, Dosage: *raw.Dosage}, nil
}

// SummarizeRecords turns the reference medical record into a short
// reassuring overview paragraph.
func (s *Service) SummarizeRecords(ctx context.Context, record wellness.MedicalRecord) (string, error) {
	const feature = "summarize_records"
	encoded, err := jsonutil.MarshalNoEscape(record)
	if err != nil {
		return "", responseErr(feature, err)
	}
	resp, err := s.generate(ctx, feature, llm.Request{
		Text: fmt.Sprintf("Summarize the following health records into a simple, easy-to-understand paragraph (around 100-150 words) for a patient. Be reassuring and focus on giving a clear overview. Health Records: %s", encoded),
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// AppointmentSlots suggests booking candidates for a reason and preferred
// date.
func (s *Service) AppointmentSlots(ctx context.Context, reason, preferredDate string) ([]AppointmentSlot, error) {
	const feature = "appointment_slots"
	resp, err := s.generate(ctx, feature, llm.Request{
		Text:   fmt.Sprintf("A user wants to book a medical appointment for %q around %q. Suggest 3 available appointment slots. For each, provide a fictional doctor's name, a relevant specialty, a specific date (close to the preferred date), and a time.", reason, preferredDate),
		Schema: appointmentSlotsSchema(),
	})
	if err != nil {
		return nil, err
	}

	var slots []AppointmentSlot
	if err := jsonutil.UnmarshalFlex([]byte(resp.Text), &slots); err != nil {
		return nil, responseErr(feature, err)
	}
	if len(slots) == 0 {
		return nil, responseErr(feature, fmt.Errorf("empty slot list"))
	}
	for _, slot := range slots {
		if strings.TrimSpace(slot.Doctor) == "" {
			return nil, missingField(feature, "doctor")
		}
	}
	return slots, nil
}
