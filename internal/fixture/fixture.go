// Package fixture holds the seed catalog used to populate an empty store on
// first start.
package fixture

import (
	"time"

	"github.com/airdroplab/backend/internal/entity"
)

func date(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}

	return t
}

// Airdrops returns a fresh copy of the seed catalog.
func Airdrops() []entity.Airdrop {
	return []entity.Airdrop{
		{
			ID:              "1",
			Title:           "DefiSwap Token Airdrop",
			Description:     "Get rewarded for being an early supporter of the next-generation DeFi protocol. Complete simple tasks to earn DSWAP tokens and join our growing community.",
			Logo:            "🔄",
			Reward:          "150 DSWAP",
			TotalReward:     "1,000,000 DSWAP",
			Participants:    12450,
			MaxParticipants: 50000,
			StartDate:       date("2025-01-20T00:00:00Z"),
			EndDate:         date("2025-02-15T23:59:59Z"),
			Status:          entity.AirdropActive,
			Category:        "DeFi",
			Blockchain:      "Ethereum",
			Tasks: entity.Array[entity.Task]{
				{ID: "task1", Type: entity.TaskTelegram, Title: "Join Telegram", Description: "Join our official Telegram channel for updates", URL: "https://t.me/defiswap", Points: 50, Required: true},
				{ID: "task2", Type: entity.TaskTwitter, Title: "Follow Twitter", Description: "Follow @DefiSwap and retweet our pinned post", URL: "https://twitter.com/defiswap", Points: 30, Required: true},
				{ID: "task3", Type: entity.TaskDiscord, Title: "Join Discord", Description: "Join our Discord community and verify your account", URL: "https://discord.gg/defiswap", Points: 25, Required: false},
				{ID: "task4", Type: entity.TaskWallet, Title: "Connect Wallet", Description: "Connect your wallet to receive rewards", Points: 45, Required: true},
			},
			Requirements: entity.Array[string]{"Minimum 0.1 ETH balance", "Complete all required tasks", "Active social media accounts"},
		},
		{
			ID:              "2",
			Title:           "MetaChain Gaming Rewards",
			Description:     "Revolutionary blockchain gaming platform offering exclusive NFT rewards and governance tokens for early users. Join the future of gaming.",
			Logo:            "🎮",
			Reward:          "500 MCG + NFT",
			TotalReward:     "2,500,000 MCG",
			Participants:    8720,
			MaxParticipants: 25000,
			StartDate:       date("2025-01-15T00:00:00Z"),
			EndDate:         date("2025-01-30T23:59:59Z"),
			Status:          entity.AirdropActive,
			Category:        "Gaming",
			Blockchain:      "Polygon",
			Tasks: entity.Array[entity.Task]{
				{ID: "task1", Type: entity.TaskTelegram, Title: "Gaming Community", Description: "Join our Telegram gaming community", URL: "https://t.me/metachain", Points: 40, Required: true},
				{ID: "task2", Type: entity.TaskTwitter, Title: "Twitter Activity", Description: "Follow and engage with our Twitter content", URL: "https://twitter.com/metachain", Points: 35, Required: true},
				{ID: "task3", Type: entity.TaskDiscord, Title: "Discord Gaming Hub", Description: "Join our Discord gaming community", URL: "https://discord.gg/metachain", Points: 30, Required: true},
				{ID: "task4", Type: entity.TaskWebsite, Title: "Play Demo", Description: "Try our demo game on the website", URL: "https://metachain.game", Points: 50, Required: false},
			},
			Requirements: entity.Array[string]{"Gaming wallet setup", "Social media verification", "Demo game completion"},
		},
		{
			ID:              "3",
			Title:           "CrossBridge Protocol Launch",
			Description:     "Interoperability protocol connecting multiple blockchains. Early supporters receive governance tokens and bridge fee discounts.",
			Logo:            "🌉",
			Reward:          "200 CROSS",
			TotalReward:     "5,000,000 CROSS",
			Participants:    15670,
			MaxParticipants: 100000,
			StartDate:       date("2025-02-01T00:00:00Z"),
			EndDate:         date("2025-03-01T23:59:59Z"),
			Status:          entity.AirdropUpcoming,
			Category:        "Infrastructure",
			Blockchain:      "Multi-chain",
			Tasks: entity.Array[entity.Task]{
				{ID: "task1", Type: entity.TaskTelegram, Title: "Protocol Updates", Description: "Join for protocol updates and announcements", URL: "https://t.me/crossbridge", Points: 45, Required: true},
				{ID: "task2", Type: entity.TaskTwitter, Title: "Community Growth", Description: "Follow and share our bridge technology", URL: "https://twitter.com/crossbridge", Points: 40, Required: true},
				{ID: "task3", Type: entity.TaskWebsite, Title: "Test Bridge", Description: "Test our bridge on testnet", URL: "https://testnet.crossbridge.io", Points: 60, Required: false},
			},
			Requirements: entity.Array[string]{"Multi-chain wallet", "Testnet participation", "Community activity"},
		},
		{
			ID:              "4",
			Title:           "AI Trading Bot Genesis",
			Description:     "First decentralized AI trading bot on blockchain. Get exclusive access to beta version and AIBOT tokens for early adoption.",
			Logo:            "🤖",
			Reward:          "300 AIBOT",
			TotalReward:     "3,000,000 AIBOT",
			Participants:    6890,
			MaxParticipants: 20000,
			StartDate:       date("2025-02-10T00:00:00Z"),
			EndDate:         date("2025-02-28T23:59:59Z"),
			Status:          entity.AirdropUpcoming,
			Category:        "DeFi",
			Blockchain:      "Arbitrum",
			Tasks: entity.Array[entity.Task]{
				{ID: "task1", Type: entity.TaskTelegram, Title: "AI Trading Community", Description: "Join the AI traders community", URL: "https://t.me/aitradingbot", Points: 55, Required: true},
				{ID: "task2", Type: entity.TaskTwitter, Title: "AI Innovation Updates", Description: "Follow AI innovation updates", URL: "https://twitter.com/aitradingbot", Points: 45, Required: true},
				{ID: "task3", Type: entity.TaskDiscord, Title: "Beta Testers Hub", Description: "Join the beta testers hub", URL: "https://discord.gg/aitradingbot", Points: 40, Required: false},
			},
			Requirements: entity.Array[string]{"DeFi trading experience", "Active Arbitrum wallet", "Beta testing participation"},
		},
		{
			ID:              "5",
			Title:           "NFT Marketplace Launch",
			Description:     "Revolutionary NFT marketplace with zero gas fees and creator royalties. Early users get exclusive NFTs and platform tokens.",
			Logo:            "🎨",
			Reward:          "250 NFTM + Exclusive NFT",
			TotalReward:     "4,000,000 NFTM",
			Participants:    9340,
			MaxParticipants: 30000,
			StartDate:       date("2025-01-25T00:00:00Z"),
			EndDate:         date("2025-02-20T23:59:59Z"),
			Status:          entity.AirdropActive,
			Category:        "NFT",
			Blockchain:      "Ethereum",
			Tasks: entity.Array[entity.Task]{
				{ID: "task1", Type: entity.TaskTelegram, Title: "NFT Community", Description: "Join our NFT creators community", URL: "https://t.me/nftmarketplace", Points: 60, Required: true},
				{ID: "task2", Type: entity.TaskTwitter, Title: "NFT Updates", Description: "Follow for NFT drops and updates", URL: "https://twitter.com/nftmarketplace", Points: 50, Required: true},
				{ID: "task3", Type: entity.TaskDiscord, Title: "Creator Hub", Description: "Join the NFT creators hub", URL: "https://discord.gg/nftmarketplace", Points: 45, Required: true},
				{ID: "task4", Type: entity.TaskWebsite, Title: "Browse Collections", Description: "Explore NFT collections on our platform", URL: "https://nftmarketplace.io", Points: 40, Required: false},
			},
			Requirements: entity.Array[string]{"NFT wallet setup", "Social verification", "Platform exploration"},
		},
		{
			ID:              "6",
			Title:           "Layer 2 Scaling Solution",
			Description:     "Next-generation Layer 2 solution for Ethereum with instant transactions and minimal fees. Early adopters get governance tokens.",
			Logo:            "⚡",
			Reward:          "400 L2S",
			TotalReward:     "6,000,000 L2S",
			Participants:    11250,
			MaxParticipants: 40000,
			StartDate:       date("2025-01-18T00:00:00Z"),
			EndDate:         date("2025-02-10T23:59:59Z"),
			Status:          entity.AirdropActive,
			Category:        "Layer 2",
			Blockchain:      "Ethereum",
			Tasks: entity.Array[entity.Task]{
				{ID: "task1", Type: entity.TaskTelegram, Title: "L2 Community", Description: "Join Layer 2 scaling community", URL: "https://t.me/layer2scaling", Points: 70, Required: true},
				{ID: "task2", Type: entity.TaskTwitter, Title: "Scaling Updates", Description: "Follow scaling technology updates", URL: "https://twitter.com/layer2scaling", Points: 60, Required: true},
				{ID: "task3", Type: entity.TaskWebsite, Title: "Test Network", Description: "Test transactions on our L2 network", URL: "https://testnet.layer2scaling.io", Points: 80, Required: false},
			},
			Requirements: entity.Array[string]{"Ethereum mainnet activity", "L2 testing", "Community participation"},
		},
		{
			ID:              "7",
			Title:           "Decentralized Storage Network",
			Description:     "Secure, decentralized file storage with encryption and redundancy. Early users receive storage tokens and free storage space.",
			Logo:            "💾",
			Reward:          "350 DSN + 100GB Storage",
			TotalReward:     "5,500,000 DSN",
			Participants:    7680,
			MaxParticipants: 25000,
			StartDate:       date("2025-02-05T00:00:00Z"),
			EndDate:         date("2025-02-25T23:59:59Z"),
			Status:          entity.AirdropUpcoming,
			Category:        "Infrastructure",
			Blockchain:      "Solana",
			Tasks: entity.Array[entity.Task]{
				{ID: "task1", Type: entity.TaskTelegram, Title: "Storage Community", Description: "Join decentralized storage community", URL: "https://t.me/decstorage", Points: 65, Required: true},
				{ID: "task2", Type: entity.TaskTwitter, Title: "Storage Innovation", Description: "Follow storage innovation updates", URL: "https://twitter.com/decstorage", Points: 55, Required: true},
				{ID: "task3", Type: entity.TaskDiscord, Title: "Developer Hub", Description: "Join the developer community", URL: "https://discord.gg/decstorage", Points: 50, Required: false},
			},
			Requirements: entity.Array[string]{"Solana wallet", "Storage testing", "Developer activity"},
		},
		{
			ID:              "8",
			Title:           "Social DeFi Platform",
			Description:     "Combining social media with DeFi features. Users earn tokens for content creation and community engagement.",
			Logo:            "🌐",
			Reward:          "180 SOCIAL",
			TotalReward:     "3,600,000 SOCIAL",
			Participants:    13420,
			MaxParticipants: 50000,
			StartDate:       date("2025-01-22T00:00:00Z"),
			EndDate:         date("2025-02-18T23:59:59Z"),
			Status:          entity.AirdropActive,
			Category:        "DeFi",
			Blockchain:      "Polygon",
			Tasks: entity.Array[entity.Task]{
				{ID: "task1", Type: entity.TaskTelegram, Title: "Social DeFi Community", Description: "Join our social DeFi community", URL: "https://t.me/socialdefi", Points: 40, Required: true},
				{ID: "task2", Type: entity.TaskTwitter, Title: "Social Engagement", Description: "Follow and engage with our content", URL: "https://twitter.com/socialdefi", Points: 35, Required: true},
				{ID: "task3", Type: entity.TaskDiscord, Title: "Creator Hub", Description: "Join the content creators hub", URL: "https://discord.gg/socialdefi", Points: 30, Required: true},
				{ID: "task4", Type: entity.TaskWebsite, Title: "Create Profile", Description: "Create your social DeFi profile", URL: "https://socialdefi.app", Points: 45, Required: false},
			},
			Requirements: entity.Array[string]{"Social media activity", "Content creation", "Community engagement"},
		},
		{
			ID:              "9",
			Title:           "Green Energy Blockchain",
			Description:     "Eco-friendly blockchain for carbon credit trading and renewable energy certificates. Support green initiatives and earn rewards.",
			Logo:            "🌱",
			Reward:          "220 GREEN",
			TotalReward:     "4,400,000 GREEN",
			Participants:    5890,
			MaxParticipants: 20000,
			StartDate:       date("2025-02-12T00:00:00Z"),
			EndDate:         date("2025-03-05T23:59:59Z"),
			Status:          entity.AirdropUpcoming,
			Category:        "Infrastructure",
			Blockchain:      "Multi-chain",
			Tasks: entity.Array[entity.Task]{
				{ID: "task1", Type: entity.TaskTelegram, Title: "Green Community", Description: "Join the green blockchain community", URL: "https://t.me/greenblockchain", Points: 50, Required: true},
				{ID: "task2", Type: entity.TaskTwitter, Title: "Eco Updates", Description: "Follow eco-friendly blockchain updates", URL: "https://twitter.com/greenblockchain", Points: 45, Required: true},
				{ID: "task3", Type: entity.TaskWebsite, Title: "Carbon Calculator", Description: "Use our carbon footprint calculator", URL: "https://greenblockchain.eco", Points: 55, Required: false},
			},
			Requirements: entity.Array[string]{"Environmental interest", "Carbon awareness", "Green initiatives support"},
		},
	}
}
