package models

// Setr004Message is the detailed schema for a SETR.004 Redemption Order:
// the master/pool references and the individual fund orders.
type Setr004Message struct {
	PaymentMessage

	CreationDateTime *string  `json:"creation_date_time"`
	MasterReference  *string  `json:"master_reference"`
	PoolReference    *string  `json:"pool_reference"`
	Orders           []Detail `json:"orders,omitempty"`
}

func (m *Setr004Message) SchemaKey() string { return "setr.004" }
func (m *Setr004Message) OrderList() []Detail { return m.Orders }

// Setr010Message is the detailed schema for a SETR.010 Subscription Order.
type Setr010Message struct {
	PaymentMessage

	CreationDateTime *string  `json:"creation_date_time"`
	MasterReference  *string  `json:"master_reference"`
	PoolReference    *string  `json:"pool_reference"`
	Orders           []Detail `json:"orders,omitempty"`
}

func (m *Setr010Message) SchemaKey() string { return "setr.010" }
func (m *Setr010Message) OrderList() []Detail { return m.Orders }
