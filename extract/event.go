package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tbxark/quoteagent/types"
)

var eventRules = []rule[types.EventType]{
	{regexp.MustCompile(`\b(mariages?|wedding|noces?)\b`), types.EventWedding},
	{regexp.MustCompile(`\b(anniversaires?|anniv|birthday|bday)\b`), types.EventBirthday},
	{regexp.MustCompile(`\b(conferences?)\b`), types.EventConference},
	{regexp.MustCompile(`\b(seminaires?|seminars?)\b`), types.EventSeminar},
	{regexp.MustCompile(`\b(soirees?|fetes?|party|parties)\b`), types.EventParty},
}

func EventType(text string) *types.EventType {
	return firstMatch(Normalize(text), eventRules)
}

var (
	bareNumber   = regexp.MustCompile(`^\d{1,4}$`)
	peopleNumber = regexp.MustCompile(`\b(\d{1,5})\s*(personnes?|pers|invites?|convives?|participants?|people|persons?|guests?|pax|attendees?)\b`)
)

// PeopleCount accepts a bare integer first, then an integer followed by a
// people noun.
func PeopleCount(text string) *int {
	trimmed := strings.TrimSpace(text)
	if bareNumber.MatchString(trimmed) {
		return positive(trimmed)
	}
	if m := peopleNumber.FindStringSubmatch(Normalize(text)); m != nil {
		return positive(m[1])
	}
	return nil
}

func positive(digits string) *int {
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}

// Outdoor is checked first so that indoor words never shadow it.
var settingRules = []rule[types.Setting]{
	{regexp.MustCompile(`\b(exterieure?s?|dehors|plein air|outdoors?|outside)\b`), types.SettingOutdoor},
	{regexp.MustCompile(`\b(interieure?s?|dedans|en salle|indoors?|inside)\b`), types.SettingIndoor},
}

func IndoorOutdoor(text string) *types.Setting {
	return firstMatch(Normalize(text), settingRules)
}

var (
	// No dance or DJ vocabulary may appear in the conference branch.
	conferenceVibeRules = []rule[types.Vibe]{
		{regexp.MustCompile(`\b(micros?|microphones?|mics?|voix|voice|sonoriser|parole|orateurs?|intervenants?|speakers?)\b`), types.VibeVoice},
		{regexp.MustCompile(`\b(videos?|videoprojecteur|projection|projecteur|ecrans?|slides?|powerpoint|diaporama|presentations?|projector|screen)\b`), types.VibePresentation},
	}
	partyVibeRules = []rule[types.Vibe]{
		// Only a reply that opens with "both" picks the mixed vibe; "sur les deux jours" does not.
		{regexp.MustCompile(`^(les deux|un peu des deux|un mix|un melange|both|a bit of both|a mix|mixte|mix)\b`), types.VibeMixed},
		{regexp.MustCompile(`\b(dj|danser?|dance|dancing|dancefloor|piste de danse|musique forte|loud music|boite de nuit)\b`), types.VibeDJ},
		{regexp.MustCompile(`\b(discours|speech|speeches|allocutions?|prise de parole|toasts?|parler aux invites|address the guests)\b`), types.VibeSpeeches},
		{regexp.MustCompile(`\b(ambiance|musique de fond|fond sonore|background music|background|lounge)\b`), types.VibeAmbiance},
	}
)

// Vibe is conditioned on the event resolved so far: conference-like events
// only resolve to voice or presentation.
func Vibe(text string, event *types.EventType, pack types.PackKey) *types.Vibe {
	normalized := Normalize(text)
	if types.ConferenceLike(event, pack) {
		return firstMatch(normalized, conferenceVibeRules)
	}
	return firstMatch(normalized, partyVibeRules)
}

var (
	smallNumbers = map[string]int{
		"un": 1, "une": 1, "deux": 2, "trois": 3, "quatre": 4, "cinq": 5, "six": 6,
		"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	}
	speakerCount = regexp.MustCompile(`\b(\d{1,2}|un|une|deux|trois|quatre|cinq|six|one|two|three|four|five)\s+(intervenants?|orateurs?|speakers?|conferenciers?|presentateurs?|panelistes?)\b`)
	noMicrophone = regexp.MustCompile(`\b(pas|sans|aucun|no|without)\b[^.!?]{0,15}\b(micros?|microphones?|mics?)\b`)
	microphone   = regexp.MustCompile(`\b(micros?|microphones?|mics?|sonoriser)\b`)
	noVideo      = regexp.MustCompile(`\b(pas|sans|aucun|no|without)\b[^.!?]{0,20}\b(videos?|projection|projecteur|videoprojecteur|ecrans?|screen|projector)\b`)
	video        = regexp.MustCompile(`\b(videos?|videoprojecteur|projection|projecteur|ecrans?|slides?|powerpoint|diaporama|projector|screen)\b`)

	microphoneTypeRules = []rule[types.MicrophoneType]{
		{regexp.MustCompile(`\b(cravate|lavalier|lapel|clip|serre-tete|headset)\b`), types.MicrophoneLapel},
		{regexp.MustCompile(`\b(a main|mains?|handheld|hand-held)\b`), types.MicrophoneHandheld},
		{regexp.MustCompile(`\b(sans fil|sans-fil|hf|wireless|cordless)\b`), types.MicrophoneWireless},
	}
)

// ConferenceDetails only makes sense for conference-like events; callers
// gate it on the resolved event type.
func ConferenceDetails(text string) *types.ConferenceDetails {
	normalized := Normalize(text)
	var d types.ConferenceDetails
	if m := speakerCount.FindStringSubmatch(normalized); m != nil {
		if n, ok := smallNumbers[m[1]]; ok {
			d.SpeakerCount = &n
		} else {
			d.SpeakerCount = positive(m[1])
		}
	}
	switch {
	case noMicrophone.MatchString(normalized):
		d.NeedsMicrophones = types.Ptr(false)
	case microphone.MatchString(normalized):
		d.NeedsMicrophones = types.Ptr(true)
	}
	if d.NeedsMicrophones == nil || *d.NeedsMicrophones {
		if mt := firstMatch(normalized, microphoneTypeRules); mt != nil {
			d.MicrophoneType = mt
			d.NeedsMicrophones = types.Ptr(true)
		}
	}
	switch {
	case noVideo.MatchString(normalized):
		d.NeedsVideo = types.Ptr(false)
	case video.MatchString(normalized):
		d.NeedsVideo = types.Ptr(true)
	}
	if d.Empty() {
		return nil
	}
	return &d
}
