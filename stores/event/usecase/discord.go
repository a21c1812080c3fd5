package usecase

import (
	"fmt"
	"math/big"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain/event"
)

type DiscordNotifierCfg struct {
	BotKey    string
	ChannelId string
	// Decimals and Symbol describe the native currency amounts are paid in
	Decimals int32
	Symbol   string
	// AssetUrl is a format string taking the token and the token id
	AssetUrl string
}

type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type discordNotifier struct {
	cfg    DiscordNotifierCfg
	sender embedSender
}

// NewDiscordNotifier posts completed sales to a discord channel
func NewDiscordNotifier(cfg DiscordNotifierCfg) (event.Notifier, error) {
	session, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.BotKey))
	if err != nil {
		return nil, err
	}
	return &discordNotifier{cfg: cfg, sender: session}, nil
}

func (n *discordNotifier) Notify(c ctx.Ctx, evt *event.Event) error {
	msg := n.embed(evt)
	if msg == nil {
		return nil
	}
	if _, err := n.sender.ChannelMessageSendEmbed(n.cfg.ChannelId, msg); err != nil {
		c.WithField("err", err).Error("discord.ChannelMessageSendEmbed failed")
		return err
	}
	return nil
}

// embed is nil for events that are not sales
func (n *discordNotifier) embed(evt *event.Event) *discordgo.MessageEmbed {
	var title string
	switch evt.Name {
	case event.BoughtFixedSale:
		title = "Item sold!"
	case event.AuctionEnded:
		title = "Auction settled!"
	default:
		return nil
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf(n.cfg.AssetUrl, evt.Token, evt.TokenId),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Seller", Value: string(evt.Owner)},
			{Name: "Buyer", Value: string(evt.Actor)},
			{Name: "Quantity", Value: fmt.Sprintf("%d", evt.Quantity)},
			{Name: "Price", Value: fmt.Sprintf("%s %s", n.formatAmount(evt.Amount), n.cfg.Symbol)},
		},
	}
}

func (n *discordNotifier) formatAmount(amount string) string {
	v, ok := new(big.Int).SetString(amount, 10)
	if !ok {
		return amount
	}
	return decimal.NewFromBigInt(v, -n.cfg.Decimals).String()
}
