package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketcore/domain/event"
)

type fakeSender struct {
	channel string
	sent    []*discordgo.MessageEmbed
	err     error
}

func (f *fakeSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	f.channel = channelID
	f.sent = append(f.sent, embed)
	return &discordgo.Message{}, f.err
}

func newTestNotifier(sender embedSender) *discordNotifier {
	return &discordNotifier{
		cfg: DiscordNotifierCfg{
			ChannelId: "sales",
			Decimals:  18,
			Symbol:    "ETH",
			AssetUrl:  "https://market.example/asset/%s/%s",
		},
		sender: sender,
	}
}

func TestDiscordNotifiesSales(t *testing.T) {
	req := require.New(t)
	sender := &fakeSender{}
	n := newTestNotifier(sender)

	evt := event.New(event.BoughtFixedSale, 4, time.Unix(1, 0))
	evt.Token = "0xabc"
	evt.TokenId = "7"
	evt.Owner = "0xseller"
	evt.Actor = "0xbuyer"
	evt.Quantity = 2
	evt.Amount = "1500000000000000000"

	req.NoError(n.Notify(mockCtx, evt))
	req.Equal("sales", sender.channel)
	req.Len(sender.sent, 1)
	msg := sender.sent[0]
	req.Equal("Item sold!", msg.Title)
	req.Equal("https://market.example/asset/0xabc/7", msg.Description)
	req.Equal("1.5 ETH", msg.Fields[3].Value)
	req.Equal("2", msg.Fields[2].Value)
}

func TestDiscordSkipsOtherEvents(t *testing.T) {
	sender := &fakeSender{}
	n := newTestNotifier(sender)

	require.NoError(t, n.Notify(mockCtx, event.New(event.BidPlaced, 1, time.Unix(1, 0))))
	require.Empty(t, sender.sent)
}

func TestDiscordSendError(t *testing.T) {
	sender := &fakeSender{err: errors.New("rate limited")}
	n := newTestNotifier(sender)

	evt := event.New(event.AuctionEnded, 1, time.Unix(1, 0))
	evt.Amount = "1"
	require.Error(t, n.Notify(mockCtx, evt))
}
