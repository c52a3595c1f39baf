package client

// ClientSet contains all the sub-clients for different resource types
type ClientSet struct {
	baseClient *BaseClient

	Health            Health
	Version           Version
	Collections       Collections
	SourceConnections SourceConnections
	Sources           Sources
	Destinations      Destinations
	Sync              Sync
	Chat              Chat
	Organizations     Organizations
	APIKeys           APIKeys
	Usage             Usage
}

// New creates a new Airweave client set
func New(baseURL, apiKey string, options ...ClientOption) *ClientSet {
	baseClient := NewBaseClient(baseURL, apiKey, options...)

	return &ClientSet{
		baseClient:        baseClient,
		Health:            NewHealthClient(baseClient),
		Version:           NewVersionClient(baseClient),
		Collections:       NewCollectionsClient(baseClient),
		SourceConnections: NewSourceConnectionsClient(baseClient),
		Sources:           NewSourcesClient(baseClient),
		Destinations:      NewDestinationsClient(baseClient),
		Sync:              NewSyncClient(baseClient),
		Chat:              NewChatClient(baseClient),
		Organizations:     NewOrganizationsClient(baseClient),
		APIKeys:           NewAPIKeysClient(baseClient),
		Usage:             NewUsageClient(baseClient),
	}
}
