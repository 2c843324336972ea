package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbxark/quoteagent/types"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "une soiree en exterieur", Normalize("  Une   Soirée en EXTÉRIEUR "))
	assert.Equal(t, "c'est ok", Normalize("C’est OK"))
}

func TestEventType(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want *types.EventType
	}{
		{"une conférence", types.Ptr(types.EventConference)},
		{"Séminaire d'entreprise", types.Ptr(types.EventSeminar)},
		{"a wedding reception", types.Ptr(types.EventWedding)},
		{"une soirée d'anniversaire", types.Ptr(types.EventBirthday)},
		{"soirée", types.Ptr(types.EventParty)},
		{"une fête", types.Ptr(types.EventParty)},
		{"bonjour", nil},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			assert.Equal(t, c.want, EventType(c.in))
		})
	}
}

func TestPeopleCount(t *testing.T) {
	t.Parallel()
	assert.Equal(t, types.Ptr(50), PeopleCount("50"))
	assert.Equal(t, types.Ptr(120), PeopleCount("environ 120 invités"))
	assert.Equal(t, types.Ptr(80), PeopleCount("80 guests"))
	assert.Equal(t, types.Ptr(30), PeopleCount("30 pax"))
	assert.Nil(t, PeopleCount("0"))
	assert.Nil(t, PeopleCount("12345"))
	assert.Nil(t, PeopleCount("beaucoup de monde"))
}

func TestIndoorOutdoorPrefersOutdoor(t *testing.T) {
	t.Parallel()
	assert.Equal(t, types.Ptr(types.SettingIndoor), IndoorOutdoor("intérieur"))
	assert.Equal(t, types.Ptr(types.SettingOutdoor), IndoorOutdoor("en extérieur"))
	assert.Equal(t, types.Ptr(types.SettingOutdoor), IndoorOutdoor("outdoor, maybe indoor if it rains"))
	assert.Nil(t, IndoorOutdoor("je ne sais pas"))
}

func TestVibePartyBranch(t *testing.T) {
	t.Parallel()
	party := types.Ptr(types.EventParty)
	assert.Equal(t, types.Ptr(types.VibeDJ), Vibe("un vrai DJ pour danser", party, types.PackNone))
	assert.Equal(t, types.Ptr(types.VibeSpeeches), Vibe("juste pour les discours", party, types.PackNone))
	assert.Equal(t, types.Ptr(types.VibeAmbiance), Vibe("musique de fond", nil, types.PackNone))
	assert.Equal(t, types.Ptr(types.VibeMixed), Vibe("les deux", party, types.PackNone))
	assert.Equal(t, types.Ptr(types.VibeMixed), Vibe("Les deux, DJ et discours", party, types.PackNone))
	assert.Nil(t, Vibe("un mariage sur les deux jours", types.Ptr(types.EventWedding), types.PackNone))
	assert.Nil(t, Vibe("we need both days", party, types.PackNone))
}

func TestVibeConferenceBranchIgnoresDJ(t *testing.T) {
	t.Parallel()
	conf := types.Ptr(types.EventConference)
	assert.Nil(t, Vibe("un DJ pour danser", conf, types.PackNone))
	assert.Nil(t, Vibe("musique forte", nil, types.PackConference))
	assert.Equal(t, types.Ptr(types.VibeVoice), Vibe("il faut des micros", conf, types.PackNone))
	assert.Equal(t, types.Ptr(types.VibePresentation), Vibe("un vidéoprojecteur", types.Ptr(types.EventSeminar), types.PackNone))
}

func TestConferenceDetails(t *testing.T) {
	t.Parallel()
	d := ConferenceDetails("3 intervenants avec micro cravate, et un écran")
	require.NotNil(t, d)
	assert.Equal(t, types.Ptr(3), d.SpeakerCount)
	assert.Equal(t, types.Ptr(true), d.NeedsMicrophones)
	assert.Equal(t, types.Ptr(types.MicrophoneLapel), d.MicrophoneType)
	assert.Equal(t, types.Ptr(true), d.NeedsVideo)

	d = ConferenceDetails("two speakers, no microphones, no video")
	require.NotNil(t, d)
	assert.Equal(t, types.Ptr(2), d.SpeakerCount)
	assert.Equal(t, types.Ptr(false), d.NeedsMicrophones)
	assert.Nil(t, d.MicrophoneType)
	assert.Equal(t, types.Ptr(false), d.NeedsVideo)

	d = ConferenceDetails("micros sans fil")
	require.NotNil(t, d)
	assert.Equal(t, types.Ptr(types.MicrophoneWireless), d.MicrophoneType)

	assert.Nil(t, ConferenceDetails("demain"))
}

func TestLogistics(t *testing.T) {
	t.Parallel()
	assert.Equal(t, types.Ptr(types.DeliveryDelivery), DeliveryChoice("livraison svp"))
	assert.Equal(t, types.Ptr(types.DeliveryPickup), DeliveryChoice("je viendrai le retirer"))
	assert.Equal(t, types.Ptr(types.DeliveryPickup), DeliveryChoice("pick up"))
	assert.Nil(t, DeliveryChoice("oui"))

	assert.Equal(t, types.Ptr(true), WithInstallation("avec installation"))
	assert.Equal(t, types.Ptr(false), WithInstallation("sans installation"))
	assert.Nil(t, WithInstallation("merci"))
}

func TestDepartment(t *testing.T) {
	t.Parallel()
	assert.Equal(t, types.Ptr("77"), Department("77"))
	assert.Equal(t, types.Ptr("07"), Department("département 7"))
	assert.Equal(t, types.Ptr("92"), Department("Hauts-de-Seine"))
	assert.Equal(t, types.Ptr("75"), Department("12 rue de Rivoli 75001 Paris"))
	assert.Equal(t, types.Ptr("94"), Department("94300"))
	assert.Nil(t, Department("99"))
	assert.Nil(t, Department("je ne sais pas"))

	assert.Equal(t, types.Ptr("77"), LocatedDepartment("Seine-et-Marne"))
	assert.Equal(t, types.Ptr("75"), LocatedDepartment("12 rue de Rivoli 75001 Paris"))
	assert.Nil(t, LocatedDepartment("50 personnes"))
	assert.Nil(t, LocatedDepartment("12 rue de la Paix"))
	assert.Nil(t, LocatedDepartment("une soirée pour 10000 personnes"))
	assert.Equal(t, types.Ptr("07"), Department("dans le 7"))
	assert.Equal(t, types.Ptr("77"), Department("le 77."))
	assert.Nil(t, Department("12 rue de la Paix"))
	assert.Nil(t, Department("on sera 40"))
}

func TestAddress(t *testing.T) {
	t.Parallel()
	assert.Equal(t, types.Ptr("12 rue de la Paix"), Address(" 12 rue de la Paix "))
	assert.Equal(t, types.Ptr("Salle des fêtes, 77300"), Address("Salle des fêtes, 77300"))
	assert.Nil(t, Address("chez moi"))
	assert.Nil(t, Address("une soirée pour 10000 personnes"))
	assert.Equal(t, types.Ptr("10000 invités, salle à 94300"), Address("10000 invités, salle à 94300"))
}
