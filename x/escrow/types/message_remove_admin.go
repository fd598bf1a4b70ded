package types

func NewMsgRemoveAdmin(creator string) *MsgRemoveAdmin {
	return &MsgRemoveAdmin{
		Creator: creator,
	}
}
