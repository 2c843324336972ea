package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbxark/quoteagent/types"
)

func user(text string) types.ChatMessage {
	return types.NewChatMessage(types.RoleUser, types.KindNormal, text)
}

func assistant(text string) types.ChatMessage {
	return types.NewChatMessage(types.RoleAssistant, types.KindNormal, text)
}

func TestBuildEmptyTranscript(t *testing.T) {
	t.Parallel()
	st := Build(Input{})
	assert.False(t, st.Engaged)
	assert.False(t, st.HasGreetingBeenDone)
	assert.True(t, st.Known.Empty())
	assert.Equal(t, AskedQuestions{}, st.AskedQuestions)
}

func TestBuildUserGreetingIsNotEngagement(t *testing.T) {
	t.Parallel()
	st := Build(Input{Messages: []types.ChatMessage{user("Bonjour !")}})
	assert.False(t, st.Engaged)
	assert.Equal(t, "Bonjour !", st.LastUserNormal)
}

func TestBuildEngagedSources(t *testing.T) {
	t.Parallel()
	assert.True(t, Build(Input{Scenario: "wedding-sound"}).Engaged)
	assert.True(t, Build(Input{Product: &types.ProductContext{ID: "sono-1", Name: "Pack sono"}}).Engaged)
	assert.True(t, Build(Input{Pack: types.PackParty}).Engaged)
	assert.True(t, Build(Input{Messages: []types.ChatMessage{user("un mariage")}}).Engaged)
	assert.True(t, Build(Input{Messages: []types.ChatMessage{assistant("Que puis-je faire pour vous ?")}}).Engaged)
}

func TestBuildConferenceScenario(t *testing.T) {
	t.Parallel()
	st := Build(Input{Messages: []types.ChatMessage{
		user("une conférence"),
		assistant("how many people?"),
		user("50"),
		assistant("indoor or outdoor?"),
		user("intérieur"),
	}})
	assert.Equal(t, types.Ptr(types.EventConference), st.Known.EventType)
	assert.Equal(t, types.Ptr(50), st.Known.PeopleCount)
	assert.Equal(t, types.Ptr(types.SettingIndoor), st.Known.IndoorOutdoor)
	assert.Nil(t, st.Known.Vibe)
	assert.True(t, st.AskedQuestions.PeopleCount)
	assert.True(t, st.AskedQuestions.IndoorOutdoor)
	assert.False(t, st.AskedQuestions.EventType)
	assert.Equal(t, ConferenceBranch, st.Branch())
	assert.True(t, st.Engaged)
}

func TestBuildFirstValueWins(t *testing.T) {
	t.Parallel()
	st := Build(Input{Messages: []types.ChatMessage{
		user("un mariage pour 80 personnes"),
		user("finalement une soirée pour 120 invités"),
	}})
	assert.Equal(t, types.Ptr(types.EventWedding), st.Known.EventType)
	assert.Equal(t, types.Ptr(80), st.Known.PeopleCount)
}

func TestBuildRepeatedNumberKeepsCount(t *testing.T) {
	t.Parallel()
	st := Build(Input{Messages: []types.ChatMessage{
		user("soirée"),
		assistant("Combien de personnes sont attendues ?"),
		user("50"),
		user("50"),
	}})
	assert.Equal(t, types.Ptr(50), st.Known.PeopleCount)
	assert.False(t, st.AskedQuestions.IndoorOutdoor)
}

func TestBuildIgnoresNonParticipatingMessages(t *testing.T) {
	t.Parallel()
	st := Build(Input{Messages: []types.ChatMessage{
		types.NewChatMessage(types.RoleUser, types.KindOther, "un mariage"),
		types.NewChatMessage(types.RoleAssistant, types.KindOther, "Combien de personnes ?"),
		types.NewChatMessage(types.RoleSystem, types.KindNormal, "un séminaire"),
	}})
	assert.True(t, st.Known.Empty())
	assert.False(t, st.AskedQuestions.PeopleCount)
	assert.False(t, st.Engaged)
}

func TestBuildAssistantOptionsDoNotFillSlots(t *testing.T) {
	t.Parallel()
	st := Build(Input{Messages: []types.ChatMessage{
		assistant("L'événement aura-t-il lieu en intérieur ou en extérieur ?"),
	}})
	assert.Nil(t, st.Known.IndoorOutdoor)
	assert.True(t, st.AskedQuestions.IndoorOutdoor)
}

func TestBuildGreetingDone(t *testing.T) {
	t.Parallel()
	st := Build(Input{Messages: []types.ChatMessage{
		types.NewChatMessage(types.RoleAssistant, types.KindWelcome, "Bienvenue sur notre boutique"),
	}})
	assert.True(t, st.HasGreetingBeenDone)

	st = Build(Input{Messages: []types.ChatMessage{assistant("Bonjour ! Quel type d'événement organisez-vous ?")}})
	assert.True(t, st.HasGreetingBeenDone)
	assert.True(t, st.AskedQuestions.EventType)

	st = Build(Input{Messages: []types.ChatMessage{assistant("Quel type d'événement organisez-vous ?")}})
	assert.False(t, st.HasGreetingBeenDone)
}

func TestBuildPackSeedsLogistics(t *testing.T) {
	t.Parallel()
	st := Build(Input{
		Pack: types.PackConference,
		Messages: []types.ChatMessage{
			user("je viendrai le retirer, sans installation"),
		},
	})
	assert.Equal(t, types.PackConference, st.PackKey)
	assert.Equal(t, types.Ptr(types.DeliveryDelivery), st.Known.DeliveryChoice)
	assert.Equal(t, types.Ptr(true), st.Known.WithInstallation)
	assert.True(t, st.AskedQuestions.DeliveryChoice)
	assert.Equal(t, ConferenceBranch, st.Branch())
}

func TestBuildUnknownPackIsIgnored(t *testing.T) {
	t.Parallel()
	st := Build(Input{Pack: types.PackKey("festival")})
	assert.Equal(t, types.PackNone, st.PackKey)
	assert.Nil(t, st.Known.DeliveryChoice)
	assert.False(t, st.Engaged)
}

func TestBuildDatesFillStartThenEnd(t *testing.T) {
	t.Parallel()
	st := Build(Input{Messages: []types.ChatMessage{
		user("samedi 14h"),
		assistant("Et à quelle date et heure se termine-t-il ?"),
		user("dimanche 2h"),
	}})
	assert.Equal(t, types.Ptr("samedi 14h"), st.Known.StartISO)
	assert.Equal(t, types.Ptr("dimanche 2h"), st.Known.EndISO)

	st = Build(Input{Messages: []types.ChatMessage{
		user("samedi 14h"),
		user("jusqu'à dimanche 2h"),
	}})
	assert.Equal(t, types.Ptr("dimanche 2h"), st.Known.EndISO)

	st = Build(Input{Messages: []types.ChatMessage{user("du samedi 14h au dimanche 2h")}})
	assert.Equal(t, types.Ptr("samedi 14h"), st.Known.StartISO)
	assert.Equal(t, types.Ptr("dimanche 2h"), st.Known.EndISO)
}

func TestBuildLaterTimeNeedsEndQuestion(t *testing.T) {
	t.Parallel()
	st := Build(Input{Messages: []types.ChatMessage{
		user("un mariage à 15h"),
		assistant("Combien de personnes sont attendues ?"),
		user("15h"),
	}})
	assert.Equal(t, types.Ptr("15h"), st.Known.StartISO)
	assert.Nil(t, st.Known.EndISO)
	assert.False(t, st.AskedQuestions.End)
}

func TestBuildVibeNeedsExplicitBoth(t *testing.T) {
	t.Parallel()
	st := Build(Input{Messages: []types.ChatMessage{
		user("un mariage sur les deux jours"),
		assistant("Combien de personnes sont attendues ?"),
		user("80"),
	}})
	assert.Equal(t, types.Ptr(types.EventWedding), st.Known.EventType)
	assert.Equal(t, types.Ptr(80), st.Known.PeopleCount)
	assert.Nil(t, st.Known.Vibe)
}

func TestBuildLocationNeedsDelivery(t *testing.T) {
	t.Parallel()
	st := Build(Input{Messages: []types.ChatMessage{user("77")}})
	assert.Nil(t, st.Known.Department)
	assert.Equal(t, types.Ptr(77), st.Known.PeopleCount)

	st = Build(Input{Messages: []types.ChatMessage{
		user("un mariage pour 100 personnes"),
		user("en livraison svp"),
		assistant("Dans quel département se déroulera l'événement ?"),
		user("77"),
		user("12 rue de la Paix 77300 Fontainebleau"),
	}})
	assert.Equal(t, types.Ptr(types.DeliveryDelivery), st.Known.DeliveryChoice)
	assert.Equal(t, types.Ptr("77"), st.Known.Department)
	assert.Equal(t, types.Ptr("12 rue de la Paix 77300 Fontainebleau"), st.Known.Address)
}

func TestBuildPackDoesNotReadCountsAsDepartment(t *testing.T) {
	t.Parallel()
	st := Build(Input{
		Pack:     types.PackWedding,
		Messages: []types.ChatMessage{user("un mariage pour 50 personnes")},
	})
	assert.Equal(t, types.Ptr(50), st.Known.PeopleCount)
	assert.Nil(t, st.Known.Department)

	st = Build(Input{
		Pack:     types.PackWedding,
		Messages: []types.ChatMessage{user("au domaine, 8 allée des Tilleuls 78120 Rambouillet")},
	})
	assert.Equal(t, types.Ptr("78"), st.Known.Department)
	assert.Equal(t, types.Ptr("au domaine, 8 allée des Tilleuls 78120 Rambouillet"), st.Known.Address)
}

func TestBuildPackDoesNotReadLargeCountAsPostalCode(t *testing.T) {
	t.Parallel()
	st := Build(Input{
		Pack:     types.PackParty,
		Messages: []types.ChatMessage{user("une soirée pour 10000 personnes")},
	})
	assert.Equal(t, types.Ptr(10000), st.Known.PeopleCount)
	assert.Nil(t, st.Known.Address)
	assert.Nil(t, st.Known.Department)
}

func TestBuildDepartmentAnswerIgnoresStreetNumber(t *testing.T) {
	t.Parallel()
	st := Build(Input{
		Pack: types.PackParty,
		Messages: []types.ChatMessage{
			assistant("Dans quel département se déroulera l'événement ?"),
			user("12 rue de la Paix"),
		},
	})
	assert.Nil(t, st.Known.Department)
	assert.Equal(t, types.Ptr("12 rue de la Paix"), st.Known.Address)

	st = Build(Input{
		Pack: types.PackParty,
		Messages: []types.ChatMessage{
			assistant("Dans quel département se déroulera l'événement ?"),
			user("dans le 77"),
		},
	})
	assert.Equal(t, types.Ptr("77"), st.Known.Department)
}

func TestBuildConferenceDetailsMerge(t *testing.T) {
	t.Parallel()
	st := Build(Input{Messages: []types.ChatMessage{
		user("un séminaire"),
		user("3 intervenants avec micro"),
		user("micros cravate et pas de vidéo"),
	}})
	require.NotNil(t, st.Known.ConferenceDetails)
	d := st.Known.ConferenceDetails
	assert.Equal(t, types.Ptr(3), d.SpeakerCount)
	assert.Equal(t, types.Ptr(true), d.NeedsMicrophones)
	assert.Equal(t, types.Ptr(types.MicrophoneLapel), d.MicrophoneType)
	assert.Equal(t, types.Ptr(false), d.NeedsVideo)
}

func TestBuildIsIdempotent(t *testing.T) {
	t.Parallel()
	in := Input{
		Pack: types.PackWedding,
		Messages: []types.ChatMessage{
			user("un mariage"),
			assistant("Combien de personnes sont attendues ?"),
			user("120"),
		},
	}
	assert.Equal(t, Build(in), Build(in))
}

func TestBuildIsMonotonic(t *testing.T) {
	t.Parallel()
	msgs := []types.ChatMessage{
		user("une soirée"),
		assistant("Combien de personnes sont attendues ?"),
		user("60"),
	}
	before := Build(Input{Messages: msgs})
	after := Build(Input{Messages: append(msgs, user("yes"))})
	assert.Equal(t, before.Known, after.Known)
	assert.Equal(t, before.AskedQuestions, after.AskedQuestions)
}
